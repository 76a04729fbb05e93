// Package apierror defines the error envelopes the API returns. The dashboard
// surfaces Detail verbatim in its notification toasts, so messages are written
// for end users and never carry internal detail (stack traces, SQL, hosts).
package apierror

// APIError is the envelope for every 4xx/5xx response.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError extends the envelope with a per-field message map, produced
// from validator tag failures on request DTOs.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed", Fields: fields}
}
