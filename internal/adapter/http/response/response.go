// Package response provides standardized HTTP response builders for the checker API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeRateLimited        = "rate_limited"
	CodeServiceUnavailable = "service_unavailable"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgRateLimited        = "Too many checks requested, slow down"
	MsgServiceUnavailable = "The checker is not ready to serve requests"
	MsgTimeout            = "Request timed out"
	MsgInternalError      = "An unexpected error occurred"
)
