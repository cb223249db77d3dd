package domain

// DailyRecord é uma linha de insights com granularidade de um dia.
type DailyRecord struct {
	DateStart   string  `json:"date_start"`
	AccountName string  `json:"account_name,omitempty"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Leads       int     `json:"leads"`
}
