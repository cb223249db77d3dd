package metadomain

import "strings"

// AdAccount é uma conta de anúncios retornada pela listagem de contas de um
// Business Manager.
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status,omitempty"`
	AmountSpent   string `json:"amount_spent,omitempty"`
}

// AdAccountInfo são os dados cadastrais de uma única conta de anúncios.
type AdAccountInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status"`
	AmountSpent   string `json:"amount_spent"`
	Balance       string `json:"balance"`
}

const accountPrefix = "act_"

// NormalizeAccountID garante o prefixo "act_" exigido pela API em qualquer
// consulta de conta. IDs já prefixados não são alterados.
func NormalizeAccountID(accountID string) string {
	if strings.HasPrefix(accountID, accountPrefix) {
		return accountID
	}

	return accountPrefix + accountID
}
