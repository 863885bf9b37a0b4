package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the date format the booking site expects in its query string.
const DateLayout = "2006-01-02"

// MaxPassengers is the largest party the booking site accepts in a single search.
const MaxPassengers = 9

// SearchCriteria defines the parameters for a cabin availability search.
// It is built once from configuration and never modified during a check.
type SearchCriteria struct {
	// Origin is the port code of departure (e.g., "PIR")
	Origin string `json:"origin"`

	// Destination is the port code of arrival (e.g., "HER")
	Destination string `json:"destination"`

	// Date is the travel date in YYYY-MM-DD format
	Date string `json:"date"`

	// Passengers is the number of passengers to search for
	Passengers int `json:"passengers"`
}

// portCodeRegex matches port codes used by the booking site (3 uppercase letters).
var portCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidCriteria error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidCriteria)
	}
	if !portCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a 3-letter port code, got %q", ErrInvalidCriteria, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidCriteria)
	}
	if !portCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter port code, got %q", ErrInvalidCriteria, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidCriteria)
	}

	if s.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidCriteria)
	}
	if !dateRegex.MatchString(s.Date) {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidCriteria, s.Date)
	}
	if _, err := time.Parse(DateLayout, s.Date); err != nil {
		return fmt.Errorf("%w: date is not a valid date: %s", ErrInvalidCriteria, s.Date)
	}

	if s.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidCriteria)
	}
	if s.Passengers > MaxPassengers {
		return fmt.Errorf("%w: passengers cannot exceed %d", ErrInvalidCriteria, MaxPassengers)
	}

	return nil
}

// Route returns the route in "FROM-TO" form, used as a log and metric label.
func (s SearchCriteria) Route() string {
	return s.Origin + "-" + s.Destination
}
