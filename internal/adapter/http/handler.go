// Package http provides the HTTP trigger layer of the cabin availability checker.
// It lets an external scheduler run checks and read their results over HTTP.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http/response"
	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/usecase"
)

// CheckHandler handles HTTP requests for availability checks.
type CheckHandler struct {
	checker  usecase.AvailabilityChecker
	criteria domain.SearchCriteria
	timezone string
}

// NewCheckHandler creates a new CheckHandler running checks against the configured criteria.
// Departure times in responses are rendered in timezone.
func NewCheckHandler(checker usecase.AvailabilityChecker, criteria domain.SearchCriteria, timezone string) *CheckHandler {
	return &CheckHandler{
		checker:  checker,
		criteria: criteria,
		timezone: timezone,
	}
}

// RunCheck handles POST /api/v1/checks
//
// @Summary Run an availability check
// @Description Queries the booking API once and emails the configured recipient when allow-listed cabins are available
// @Tags checks
// @Accept json
// @Produce json
// @Param request body CheckRequest false "Overrides of the configured search"
// @Success 200 {object} CheckResponse "available or no_availability"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 429 {object} response.ErrorDetail "Rate limited"
// @Failure 502 {object} CheckResponse "upstream_error or parse_error"
// @Failure 503 {object} CheckResponse "transport_error"
// @Failure 504 {object} CheckResponse "booking API timed out"
// @Router /checks [post]
func (h *CheckHandler) RunCheck(c echo.Context) error {
	var req CheckRequest

	// An empty body runs the configured search unchanged
	if err := c.Bind(&req); err != nil && !errors.Is(err, io.EOF) {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(h.criteria, &req)
	if err := criteria.Validate(); err != nil {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	result := h.checker.CheckAvailability(c.Request().Context(), criteria)

	return response.CheckResult(c, statusForResult(result), ToCheckResponse(result, h.timezone))
}

// Health handles GET /health
func (h *CheckHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *CheckHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// statusForResult maps a check outcome to the HTTP status of the response.
func statusForResult(result domain.CheckResult) int {
	switch result.Outcome {
	case domain.OutcomeAvailable, domain.OutcomeNoAvailability:
		return http.StatusOK
	case domain.OutcomeUpstreamError, domain.OutcomeParseError:
		return http.StatusBadGateway
	case domain.OutcomeTransportError:
		if errors.Is(result.Err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
