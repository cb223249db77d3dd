package domain

// AccountSummary é o somatório das métricas de uma conta no período, com as
// razões derivadas. Toda razão derivada é zero quando o denominador é zero.
type AccountSummary struct {
	AccountID   string `json:"account_id,omitempty"`
	AccountName string `json:"account_name,omitempty"`
	Currency    string `json:"currency,omitempty"`

	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Reach       int     `json:"reach"`
	Clicks      int     `json:"clicks"`
	LinkClicks  int     `json:"link_clicks"`
	Leads       int     `json:"leads"`

	CPM float64 `json:"cpm"`
	CTR float64 `json:"ctr"`
	CPC float64 `json:"cpc"`
	CPL float64 `json:"cpl"`
}
