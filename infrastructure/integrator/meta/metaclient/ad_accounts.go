package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

const (
	adAccountFields   = "id,name,currency,account_status,amount_spent"
	accountInfoFields = "name,currency,account_status,amount_spent,balance"

	accountsPageLimit = 100
)

// GetAdAccountsByBusinessID lista todas as contas de anúncios pertencentes a
// um Business Manager, seguindo a paginação até o fim.
func (c *MetaClient) GetAdAccountsByBusinessID(token, businessID string) ([]metadomain.AdAccount, error) {
	path := fmt.Sprintf("%s/owned_ad_accounts", businessID)

	params := url.Values{}
	params.Add("fields", adAccountFields)
	params.Add("limit", strconv.Itoa(accountsPageLimit))

	accounts := make([]metadomain.AdAccount, 0)
	err := c.fetchAllPages(token, path, params, func(data json.RawMessage) error {
		var page []metadomain.AdAccount
		if err := json.Unmarshal(data, &page); err != nil {
			return errors.Wrap(err, "meta: error decoding ad accounts page")
		}

		accounts = append(accounts, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// GetAdAccountInfo busca os dados cadastrais de uma conta de anúncios.
func (c *MetaClient) GetAdAccountInfo(token, accountID string) (*metadomain.AdAccountInfo, error) {
	path := metadomain.NormalizeAccountID(accountID)

	params := url.Values{}
	params.Add("fields", accountInfoFields)

	body, err := c.doGet(token, path, params)
	if err != nil {
		return nil, err
	}

	var info metadomain.AdAccountInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errors.Wrap(err, "meta: error decoding ad account info")
	}

	return &info, nil
}
