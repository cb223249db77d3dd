package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro estáveis expostos aos clientes do dashboard
const (
	// Erros de validação (VAL)
	ErrMissingRequiredData = "VAL_001" // Parâmetro obrigatório ausente (token, business_id, account_id)
	ErrInvalidRequest      = "VAL_002" // Requisição inválida

	// Erros da API remota (UPS)
	ErrUpstreamAPI = "UPS_001" // A API do Meta devolveu um envelope de erro

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrExportFailure  = "SRV_002" // Falha ao gerar o arquivo de exportação
)

// Mapeamento de códigos de erro para status HTTP. Erros remotos voltam como
// 400 com a mensagem original do Meta no corpo.
var httpStatusMap = map[string]int{
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUpstreamAPI:         http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExportFailure:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
