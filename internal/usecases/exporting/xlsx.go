package exporting

import (
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const (
	summarySheetName   = "Accounts Summary"
	campaignsSheetName = "Campaigns"

	defaultColumnWidth = 15
	urlColumnWidth     = 40

	headerFillColor = "1877F2"
)

var summaryHeaders = []string{
	"Account", "Spend", "Impressions", "Leads", "CPL",
	"Reach", "Clicks", "Link Clicks", "CPM", "CTR", "CPC", "Currency",
}

var campaignHeaders = []string{
	"Campaign", "URL", "Spend", "Impressions", "Leads", "CPL",
	"Reach", "Clicks", "Link Clicks", "CPM", "CTR", "CPC",
}

// SummaryWorkbook monta a planilha do resumo por conta: cabeçalho em negrito
// sobre o azul do dashboard, bordas finas e colunas de largura fixa.
func SummaryWorkbook(summaries []domain.AccountSummary) ([]byte, error) {
	rows := make([][]any, 0, len(summaries))
	for i := range summaries {
		summary := &summaries[i]

		rows = append(rows, []any{
			summary.AccountName,
			utils.RoundWithTwoDecimalPlace(summary.Spend),
			summary.Impressions,
			summary.Leads,
			utils.RoundWithTwoDecimalPlace(summary.CPL),
			summary.Reach,
			summary.Clicks,
			summary.LinkClicks,
			utils.RoundWithTwoDecimalPlace(summary.CPM),
			utils.RoundWithTwoDecimalPlace(summary.CTR),
			utils.RoundWithTwoDecimalPlace(summary.CPC),
			summary.Currency,
		})
	}

	return buildWorkbook(summarySheetName, summaryHeaders, rows, 0)
}

// CampaignsWorkbook monta a planilha da quebra por campanha. A coluna de URL
// (segunda) recebe largura extra.
func CampaignsWorkbook(records []domain.CampaignRecord) ([]byte, error) {
	rows := make([][]any, 0, len(records))
	for i := range records {
		campaign := &records[i]

		rows = append(rows, []any{
			campaign.CampaignName,
			campaign.URL,
			utils.RoundWithTwoDecimalPlace(campaign.Spend),
			campaign.Impressions,
			campaign.Leads,
			utils.RoundWithTwoDecimalPlace(campaign.CPL),
			campaign.Reach,
			campaign.Clicks,
			campaign.LinkClicks,
			utils.RoundWithTwoDecimalPlace(campaign.CPM),
			utils.RoundWithTwoDecimalPlace(campaign.CTR),
			utils.RoundWithTwoDecimalPlace(campaign.CPC),
		})
	}

	return buildWorkbook(campaignsSheetName, campaignHeaders, rows, 2)
}

// buildWorkbook escreve cabeçalho e linhas de dados em uma única aba.
// wideColumn (1-based) marca uma coluna com largura extra; 0 desativa.
func buildWorkbook(sheetName string, headers []string, rows [][]any, wideColumn int) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	thinBorders := []excelize.Border{
		{Type: "left", Style: 1},
		{Type: "right", Style: 1},
		{Type: "top", Style: 1},
		{Type: "bottom", Style: 1},
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders,
	})
	if err != nil {
		return nil, err
	}

	dataStyle, err := file.NewStyle(&excelize.Style{Border: thinBorders})
	if err != nil {
		return nil, err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}

		if err := file.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}

		if err := file.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, err
			}

			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}

			if err := file.SetCellStyle(sheetName, cell, cell, dataStyle); err != nil {
				return nil, err
			}
		}
	}

	firstColumn, err := excelize.ColumnNumberToName(1)
	if err != nil {
		return nil, err
	}

	lastColumn, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}

	if err := file.SetColWidth(sheetName, firstColumn, lastColumn, defaultColumnWidth); err != nil {
		return nil, err
	}

	if wideColumn > 0 {
		wide, err := excelize.ColumnNumberToName(wideColumn)
		if err != nil {
			return nil, err
		}

		if err := file.SetColWidth(sheetName, wide, wide, urlColumnWidth); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
