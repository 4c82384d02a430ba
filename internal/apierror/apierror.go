// Package apierror provides the standardized error response shape for the API.
// All 4xx/5xx responses go through this package so clients always receive the
// same envelope and internals (paths, stack traces) never leak.
package apierror

// APIError is the canonical error envelope for all failed HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}
