package domain

// CampaignRecord é uma linha de insights por campanha enriquecida com a URL
// de destino resolvida a partir dos criativos. CPM, CTR e CPC vêm reportados
// pela plataforma; apenas o CPL é calculado localmente.
type CampaignRecord struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	URL          string `json:"url"`

	AccountName     string `json:"account_name,omitempty"`
	AccountCurrency string `json:"account_currency,omitempty"`

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
