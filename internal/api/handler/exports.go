package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func writeAttachment(w http.ResponseWriter, contentType, filename string, payload []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(payload)
}

// BusinessSummaryCSV exporta o resumo por conta do Business Manager em CSV.
func BusinessSummaryCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token, ok := requireQuery(w, r, "token")
		if !ok {
			return
		}

		businessID, ok := requireQuery(w, r, "business_id")
		if !ok {
			return
		}

		summaries, err := service.BusinessSummary(token, businessID, datePreset(r, defaultSummaryPreset))
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		payload, err := exporting.SummaryCSV(summaries)
		if err != nil {
			logger.WithError(err).Error("exports: failed to build summary csv")
			apiErrors.WriteError(w, apiErrors.ErrExportFailure, err.Error(), nil)
			return
		}

		writeAttachment(w, csvContentType, exporting.Filename(exporting.SummaryFilePrefix, "csv"), payload)
	})
}

// BusinessSummaryXLSX exporta o resumo por conta do Business Manager em XLSX.
func BusinessSummaryXLSX(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token, ok := requireQuery(w, r, "token")
		if !ok {
			return
		}

		businessID, ok := requireQuery(w, r, "business_id")
		if !ok {
			return
		}

		summaries, err := service.BusinessSummary(token, businessID, datePreset(r, defaultSummaryPreset))
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		payload, err := exporting.SummaryWorkbook(summaries)
		if err != nil {
			logger.WithError(err).Error("exports: failed to build summary workbook")
			apiErrors.WriteError(w, apiErrors.ErrExportFailure, err.Error(), nil)
			return
		}

		writeAttachment(w, xlsxContentType, exporting.Filename(exporting.SummaryFilePrefix, "xlsx"), payload)
	})
}

// AccountCampaignsCSV exporta a quebra por campanha de uma conta em CSV.
func AccountCampaignsCSV(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token, ok := requireQuery(w, r, "token")
		if !ok {
			return
		}

		accountID, ok := requireQuery(w, r, "account_id")
		if !ok {
			return
		}

		records, err := service.AccountCampaigns(token, accountID, datePreset(r, defaultSummaryPreset))
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		payload, err := exporting.CampaignsCSV(records)
		if err != nil {
			logger.WithError(err).Error("exports: failed to build campaigns csv")
			apiErrors.WriteError(w, apiErrors.ErrExportFailure, err.Error(), nil)
			return
		}

		writeAttachment(w, csvContentType, exporting.Filename(exporting.CampaignsFilePrefix, "csv"), payload)
	})
}

// AccountCampaignsXLSX exporta a quebra por campanha de uma conta em XLSX.
func AccountCampaignsXLSX(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token, ok := requireQuery(w, r, "token")
		if !ok {
			return
		}

		accountID, ok := requireQuery(w, r, "account_id")
		if !ok {
			return
		}

		records, err := service.AccountCampaigns(token, accountID, datePreset(r, defaultSummaryPreset))
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		payload, err := exporting.CampaignsWorkbook(records)
		if err != nil {
			logger.WithError(err).Error("exports: failed to build campaigns workbook")
			apiErrors.WriteError(w, apiErrors.ErrExportFailure, err.Error(), nil)
			return
		}

		writeAttachment(w, xlsxContentType, exporting.Filename(exporting.CampaignsFilePrefix, "xlsx"), payload)
	})
}
