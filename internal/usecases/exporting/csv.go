package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const (
	SummaryFilePrefix   = "fb_ads_summary"
	CampaignsFilePrefix = "fb_campaigns"
)

// Prefixo BOM para que planilhas abram o UTF-8 corretamente no Excel.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var summaryColumns = []string{
	"account_name", "spend", "impressions", "leads", "cpl",
	"reach", "clicks", "link_clicks", "cpm", "ctr", "cpc", "currency",
}

var campaignColumns = []string{
	"campaign_name", "url", "spend", "impressions", "leads", "cpl",
	"reach", "clicks", "link_clicks", "cpm", "ctr", "cpc",
}

// Filename carimba o nome do arquivo com o timestamp atual.
func Filename(prefix, extension string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), extension)
}

// SummaryCSV serializa o resumo por conta em CSV UTF-8 com BOM, na ordem fixa
// de colunas do dashboard.
func SummaryCSV(summaries []domain.AccountSummary) ([]byte, error) {
	buffer := &bytes.Buffer{}
	buffer.Write(utf8BOM)

	writer := csv.NewWriter(buffer)
	if err := writer.Write(summaryColumns); err != nil {
		return nil, err
	}

	for i := range summaries {
		summary := &summaries[i]

		record := []string{
			summary.AccountName,
			formatFloat(summary.Spend),
			strconv.Itoa(summary.Impressions),
			strconv.Itoa(summary.Leads),
			formatFloat(summary.CPL),
			strconv.Itoa(summary.Reach),
			strconv.Itoa(summary.Clicks),
			strconv.Itoa(summary.LinkClicks),
			formatFloat(summary.CPM),
			formatFloat(summary.CTR),
			formatFloat(summary.CPC),
			summary.Currency,
		}

		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// CampaignsCSV serializa a quebra por campanha em CSV UTF-8 com BOM.
func CampaignsCSV(records []domain.CampaignRecord) ([]byte, error) {
	buffer := &bytes.Buffer{}
	buffer.Write(utf8BOM)

	writer := csv.NewWriter(buffer)
	if err := writer.Write(campaignColumns); err != nil {
		return nil, err
	}

	for i := range records {
		campaign := &records[i]

		record := []string{
			campaign.CampaignName,
			campaign.URL,
			formatFloat(campaign.Spend),
			strconv.Itoa(campaign.Impressions),
			strconv.Itoa(campaign.Leads),
			formatFloat(campaign.CPL),
			strconv.Itoa(campaign.Reach),
			strconv.Itoa(campaign.Clicks),
			strconv.Itoa(campaign.LinkClicks),
			formatFloat(campaign.CPM),
			formatFloat(campaign.CTR),
			formatFloat(campaign.CPC),
		}

		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(utils.RoundWithTwoDecimalPlace(value), 'f', -1, 64)
}
