package minoan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
)

// Booking site paths.
const (
	tripsPath   = "/booking-api/trips"
	bookingPath = "/booking"
)

// Booking flow steps as the site numbers them.
const (
	stepSearch  = 1
	stepResults = 2
)

const headerCSRFToken = "X-CSRF-TOKEN"

// browserHeaders are sent on every request so the API answers as it would to the booking page.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Sec-Fetch-Dest":  "empty",
	"Sec-Fetch-Mode":  "cors",
	"Sec-Fetch-Site":  "same-origin",
	"Pragma":          "no-cache",
	"Cache-Control":   "no-cache",
}

// queryParam is one ordered query string entry.
type queryParam struct {
	key   string
	value string
}

// encodeQuery encodes params in the given order, unlike url.Values which sorts keys.
func encodeQuery(params []queryParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}
	return strings.Join(parts, "&")
}

// searchParams returns the query parameters shared by the booking page and the trips API.
func searchParams(criteria domain.SearchCriteria, step int) []queryParam {
	return []queryParam{
		{"from", criteria.Origin},
		{"to", criteria.Destination},
		{"date", criteria.Date},
		{"arrival", ""},
		{"passengers", strconv.Itoa(criteria.Passengers)},
		{"pets", "0"},
		{"step", strconv.Itoa(step)},
	}
}

// TripsURL returns the trip search endpoint URL for criteria.
func (a *Adapter) TripsURL(criteria domain.SearchCriteria) string {
	params := append(searchParams(criteria, stepResults),
		queryParam{"vehicles", "0"},
		queryParam{"lang", a.language},
	)
	return a.baseURL + tripsPath + "?" + encodeQuery(params)
}

// BookingPageURL returns the booking page URL for criteria at the search step.
// It is sent as the Referer of API calls.
func (a *Adapter) BookingPageURL(criteria domain.SearchCriteria) string {
	return a.baseURL + bookingPath + "?" + encodeQuery(searchParams(criteria, stepSearch))
}

// BookingURL returns a deep link to the results step of the booking page prefilled with criteria.
func (a *Adapter) BookingURL(criteria domain.SearchCriteria) string {
	params := []queryParam{
		{"from", criteria.Origin},
		{"to", criteria.Destination},
		{"date", criteria.Date},
		{"passengers", strconv.Itoa(criteria.Passengers)},
		{"pets", "0"},
		{"step", strconv.Itoa(stepResults)},
		{"vehicles", "0"},
	}
	return a.baseURL + bookingPath + "?" + encodeQuery(params)
}

// newTripsRequest builds the GET request to the trip search endpoint.
func (a *Adapter) newTripsRequest(ctx context.Context, criteria domain.SearchCriteria) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.TripsURL(criteria), nil)
	if err != nil {
		return nil, fmt.Errorf("build trips request: %w", err)
	}
	setBrowserHeaders(req)
	req.Header.Set("Referer", a.BookingPageURL(criteria))
	return req, nil
}

// setBrowserHeaders applies browserHeaders to req.
func setBrowserHeaders(req *http.Request) {
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}
}
