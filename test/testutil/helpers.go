// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
)

// Fixture names under test/testdata.
const (
	TripsAvailable = "trips_available.json"
	TripsMixed     = "trips_mixed.json"
	TripsSoldOut   = "trips_sold_out.json"
	TripsNoTrips   = "trips_no_trips.json"
	TripsMalformed = "trips_malformed.json"
	TripsLoose     = "trips_loose_types.json"
)

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t testing.TB, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(TestDataDir(t), filename))
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// TestDataDir returns the absolute path of test/testdata.
func TestDataDir(t testing.TB) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "testdata")
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t testing.TB, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// DefaultCriteria returns the search used across integration tests.
func DefaultCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:      "PIR",
		Destination: "HER",
		Date:        "2025-06-01",
		Passengers:  2,
	}
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
