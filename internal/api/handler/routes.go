package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Business retorna as rotas de agregação no escopo de um Business Manager.
func Business(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/business/accounts",
			Method:  http.MethodGet,
			Handler: BusinessAccounts(service),
		},
		{
			Path:    "/v1/business/summary",
			Method:  http.MethodGet,
			Handler: BusinessSummary(service),
		},
		{
			Path:    "/v1/business/campaigns",
			Method:  http.MethodGet,
			Handler: BusinessCampaigns(service),
		},
		{
			Path:    "/v1/business/daily",
			Method:  http.MethodGet,
			Handler: BusinessDaily(service),
		},
		{
			Path:    "/v1/business/export/csv",
			Method:  http.MethodGet,
			Handler: BusinessSummaryCSV(service),
		},
		{
			Path:    "/v1/business/export/xlsx",
			Method:  http.MethodGet,
			Handler: BusinessSummaryXLSX(service),
		},
	}
}

// Account retorna as rotas de agregação no escopo de uma única conta.
func Account(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/account",
			Method:  http.MethodGet,
			Handler: AccountInfo(service),
		},
		{
			Path:    "/v1/account/summary",
			Method:  http.MethodGet,
			Handler: AccountSummary(service),
		},
		{
			Path:    "/v1/account/campaigns",
			Method:  http.MethodGet,
			Handler: AccountCampaigns(service),
		},
		{
			Path:    "/v1/account/daily",
			Method:  http.MethodGet,
			Handler: AccountDaily(service),
		},
		{
			Path:    "/v1/account/export/csv",
			Method:  http.MethodGet,
			Handler: AccountCampaignsCSV(service),
		},
		{
			Path:    "/v1/account/export/xlsx",
			Method:  http.MethodGet,
			Handler: AccountCampaignsXLSX(service),
		},
	}
}
