// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // scratch images ship without a zoneinfo database
)

// locationCache stores cached timezone locations for performance.
var locationCache sync.Map

// Common timezone names for convenience.
const (
	// UTC is the Coordinated Universal Time.
	UTC = "UTC"

	// Athens is the timezone the Greek ferry operators publish departures in.
	Athens = "Europe/Athens"
)

// departureLayouts are the timestamp layouts seen in booking API departures,
// tried in order. Layouts without an offset are interpreted in the booking timezone.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseDeparture parses a booking API departure timestamp.
// Timestamps without an offset are interpreted in timezone.
func ParseDeparture(value, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}

	for _, layout := range departureLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse departure time %q", value)
}

// FormatDeparture renders a departure timestamp for humans, e.g. "Sun 01 Jun 2025 21:00 EEST".
// The raw value is returned unchanged when it cannot be parsed.
func FormatDeparture(value, timezone string) string {
	t, err := ParseDeparture(value, timezone)
	if err != nil {
		return value
	}
	loc, err := GetLocation(timezone)
	if err != nil {
		return value
	}
	return t.In(loc).Format("Mon 02 Jan 2006 15:04 MST")
}
