// Package apierror provides the error envelopes returned to API clients.
// Every 4xx/5xx response goes through this package so that internal details
// (stack traces, SQL errors) never leak.
package apierror

// APIError is the canonical error envelope: {"message": "..."}.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// ValidationError carries per-field failures from request binding.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Error de validación", Fields: fields}
}
