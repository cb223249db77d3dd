package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// listResponse é o envelope padrão das listagens do dashboard.
type listResponse struct {
	Data any `json:"data"`
}

func writeJSON(logger log.Logger, w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("reports: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeServiceError traduz as falhas do serviço para o corpo de erro padrão.
// Um envelope de erro da API remota volta como 400 com a mensagem original;
// o restante vira 500.
func writeServiceError(logger log.Logger, w http.ResponseWriter, err error) {
	var upstreamErr *metadomain.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.WithError(err).Warn("reports: upstream api returned an error envelope")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamAPI, upstreamErr.Message(), nil)
		return
	}

	logger.WithError(err).Error("reports: request failed")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
