package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by trip searchers and the checker.
var (
	// ErrInvalidCriteria is returned when search criteria fail validation.
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrTransport is returned when the booking API cannot be reached.
	ErrTransport = errors.New("booking api transport failure")

	// ErrSessionBootstrap is returned when the booking session could not be initialized.
	ErrSessionBootstrap = errors.New("booking session bootstrap failed")

	// ErrMalformedResponse is returned when the booking API body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed booking api response")
)

// UpstreamError describes a non-200 response from the booking API.
type UpstreamError struct {
	// StatusCode is the HTTP status returned by the booking API
	StatusCode int

	// Body is a truncated preview of the response body
	Body string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("booking api returned status %d", e.StatusCode)
}

// NewUpstreamError creates an UpstreamError for the given status and body preview.
func NewUpstreamError(statusCode int, body string) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode, Body: body}
}

// WrapTransport wraps err as a transport failure.
func WrapTransport(err error) error {
	return fmt.Errorf("%w: %w", ErrTransport, err)
}

// WrapMalformed wraps err as a decoding failure.
func WrapMalformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
}

// ClassifyError maps an error from a trip search to the outcome it represents.
func ClassifyError(err error) Outcome {
	if err == nil {
		return OutcomeNoAvailability
	}

	var upstream *UpstreamError
	switch {
	case errors.As(err, &upstream):
		return OutcomeUpstreamError
	case errors.Is(err, ErrMalformedResponse):
		return OutcomeParseError
	default:
		return OutcomeTransportError
	}
}

// IsUpstream reports whether err is an UpstreamError and returns it.
func IsUpstream(err error) (*UpstreamError, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}
	return nil, false
}
