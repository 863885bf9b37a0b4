package http

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
)

// CheckRequest is the optional body of POST /api/v1/checks.
// Omitted fields fall back to the configured search.
type CheckRequest struct {
	// Date overrides the configured departure date (YYYY-MM-DD)
	Date string `json:"date,omitempty" example:"2025-06-01"`

	// Passengers overrides the configured passenger count (1-9)
	Passengers *int `json:"passengers,omitempty" example:"2"`
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the overrides present in the request.
// Returns *ValidationErrors if any field is invalid.
func (r *CheckRequest) Validate() error {
	errs := &ValidationErrors{}

	if date := strings.TrimSpace(r.Date); date != "" {
		if !datePattern.MatchString(date) {
			errs.Add("date", "date must be in YYYY-MM-DD format")
		} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
			errs.Add("date", "date is not a valid calendar date")
		}
	}

	if r.Passengers != nil {
		if p := *r.Passengers; p < 1 || p > domain.MaxPassengers {
			errs.Add("passengers", fmt.Sprintf("passengers must be between 1 and %d", domain.MaxPassengers))
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
