package domain

// AdAccount identifica uma conta de anúncios de um Business Manager.
type AdAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}
