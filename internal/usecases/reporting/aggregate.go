package reporting

import (
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// AggregateRows soma as métricas de uma sequência de linhas de insights e
// calcula as razões derivadas. Função pura: a mesma entrada produz sempre o
// mesmo resultado. Razões com denominador zero valem zero.
func AggregateRows(rows []metadomain.InsightRow) domain.AccountSummary {
	summary := domain.AccountSummary{}

	for i := range rows {
		row := &rows[i]

		summary.Spend += row.SpendValue()
		summary.Impressions += row.ImpressionsValue()
		summary.Reach += row.ReachValue()
		summary.Clicks += row.ClicksValue()
		summary.LinkClicks += row.LinkClicks()
		summary.Leads += row.Leads()
	}

	summary.CPM = ratio(summary.Spend, summary.Impressions) * 1000
	summary.CTR = ratio(float64(summary.Clicks), summary.Impressions) * 100
	summary.CPC = ratio(summary.Spend, summary.Clicks)
	summary.CPL = ratio(summary.Spend, summary.Leads)

	return summary
}

// campaignRecord converte uma linha de insights por campanha. CPM, CTR e CPC
// são reaproveitados como reportados pela plataforma; apenas o CPL é
// calculado localmente.
func campaignRecord(row *metadomain.InsightRow, url string) domain.CampaignRecord {
	record := domain.CampaignRecord{
		CampaignID:   row.CampaignID,
		CampaignName: row.CampaignName,
		URL:          url,
		Spend:        row.SpendValue(),
		Impressions:  row.ImpressionsValue(),
		Reach:        row.ReachValue(),
		Clicks:       row.ClicksValue(),
		LinkClicks:   row.LinkClicks(),
		Leads:        row.Leads(),
		CPM:          row.CPMValue(),
		CTR:          row.CTRValue(),
		CPC:          row.CPCValue(),
	}

	record.CPL = ratio(record.Spend, record.Leads)

	return record
}

func dailyRecord(row *metadomain.InsightRow) domain.DailyRecord {
	return domain.DailyRecord{
		DateStart:   row.DateStart,
		Spend:       row.SpendValue(),
		Impressions: row.ImpressionsValue(),
		Clicks:      row.ClicksValue(),
		Leads:       row.Leads(),
	}
}

func ratio(numerator float64, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / float64(denominator)
}
