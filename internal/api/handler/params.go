package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

const (
	defaultSummaryPreset = "last_30d"
	defaultDailyPreset   = "last_14d"
)

// requireQuery lê um query param obrigatório; escreve 400 quando ausente.
func requireQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		apiErrors.WriteError(
			w,
			apiErrors.ErrMissingRequiredData,
			fmt.Sprintf("missing required query parameter: %s", name),
			nil,
		)
		return "", false
	}

	return value, true
}

// datePreset devolve o date_preset informado ou o padrão do endpoint. O valor
// é opaco: repassado à API remota sem interpretação local.
func datePreset(r *http.Request, fallback string) string {
	preset := r.URL.Query().Get("date_preset")
	if preset == "" {
		return fallback
	}

	return preset
}
