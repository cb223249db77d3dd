package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error *ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// UpstreamError é um envelope de erro explícito devolvido pela API remota.
// A requisição inteira falha sem retry; a mensagem remota é repassada ao
// cliente.
type UpstreamError struct {
	Details ErrorDetails
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details.Type == "" && e.Details.Code == 0 {
		return e.Details.Message
	}

	return fmt.Sprintf(
		"meta api error type=%s code=%d subcode=%d fbtrace_id=%s: %s",
		e.Details.Type,
		e.Details.Code,
		e.Details.ErrorSubcode,
		e.Details.FBTraceID,
		e.Details.Message,
	)
}

// Message retorna a mensagem remota para exibição ao cliente.
func (e *UpstreamError) Message() string {
	if e == nil || e.Details.Message == "" {
		return "Meta API error"
	}

	return e.Details.Message
}
