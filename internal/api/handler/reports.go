package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// BusinessAccounts lista as contas de anúncios do Business Manager informado.
func BusinessAccounts(service reporting.Reporter) http.Handler {
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

		logger.WithField("business_id", businessID).Info("reports: listing business ad accounts")

		accounts, err := service.ListAccounts(token, businessID)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		writeJSON(logger, w, listResponse{Data: accounts})
	})
}

// BusinessSummary devolve o resumo agregado de cada conta do Business Manager.
func BusinessSummary(service reporting.Reporter) http.Handler {
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

		preset := datePreset(r, defaultSummaryPreset)

		logger.WithFields(log.Fields{
			"business_id": businessID,
			"date_preset": preset,
		}).Info("reports: building business summary")

		summaries, err := service.BusinessSummary(token, businessID, preset)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		writeJSON(logger, w, listResponse{Data: summaries})
	})
}

// BusinessCampaigns devolve a quebra por campanha de todas as contas do
// Business Manager.
func BusinessCampaigns(service reporting.Reporter) http.Handler {
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

		preset := datePreset(r, defaultSummaryPreset)

		logger.WithFields(log.Fields{
			"business_id": businessID,
			"date_preset": preset,
		}).Info("reports: building business campaign breakdown")

		records, err := service.BusinessCampaigns(token, businessID, preset)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		writeJSON(logger, w, listResponse{Data: records})
	})
}

// BusinessDaily devolve a série diária de todas as contas do Business Manager.
func BusinessDaily(service reporting.Reporter) http.Handler {
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

		preset := datePreset(r, defaultDailyPreset)

		records, err := service.BusinessDaily(token, businessID, preset)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		writeJSON(logger, w, listResponse{Data: records})
	})
}

// AccountInfo repassa os dados cadastrais de uma conta de anúncios.
func AccountInfo(service reporting.Reporter) http.Handler {
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

		info, err := service.AccountInfo(token, accountID)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		writeJSON(logger, w, info)
	})
}

// AccountSummary devolve o resumo agregado de uma conta. Conta sem linhas de
// insights no período responde um objeto vazio, sem erro.
func AccountSummary(service reporting.Reporter) http.Handler {
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

		preset := datePreset(r, defaultSummaryPreset)

		logger.WithFields(log.Fields{
			"account_id":  accountID,
			"date_preset": preset,
		}).Info("reports: building account summary")

		summary, err := service.AccountSummary(token, accountID, preset)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		if summary == nil {
			writeJSON(logger, w, struct{}{})
			return
		}

		writeJSON(logger, w, summary)
	})
}

// AccountCampaigns devolve a quebra por campanha de uma conta, com URLs de
// destino resolvidas.
func AccountCampaigns(service reporting.Reporter) http.Handler {
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

		preset := datePreset(r, defaultSummaryPreset)

		records, err := service.AccountCampaigns(token, accountID, preset)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		writeJSON(logger, w, listResponse{Data: records})
	})
}

// AccountDaily devolve a série diária de uma conta.
func AccountDaily(service reporting.Reporter) http.Handler {
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

		preset := datePreset(r, defaultDailyPreset)

		records, err := service.AccountDaily(token, accountID, preset)
		if err != nil {
			writeServiceError(logger, w, err)
			return
		}

		writeJSON(logger, w, listResponse{Data: records})
	})
}
