// Package mock provides test doubles for the cabin availability checker.
// These doubles are designed for integration testing where we need
// configurable behavior (delays, failures, specific payloads).
package mock

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/klauspost/compress/gzhttp"
)

// BookingServer is a fake booking site serving the landing page and the trips API.
// It is configured with the builder methods before the first request.
type BookingServer struct {
	*httptest.Server

	mu          sync.Mutex
	status      int
	body        []byte
	delay       time.Duration
	csrfToken   string
	pageStatus  int
	tripsCalls  int
	pageCalls   int
	lastQuery   url.Values
	lastHeaders http.Header
}

// NewBookingServer starts a fake booking site answering 200 with an empty trip list.
// The server is closed when the test ends.
func NewBookingServer(t interface{ Cleanup(func()) }) *BookingServer {
	s := &BookingServer{
		status:     http.StatusOK,
		body:       []byte("[]"),
		pageStatus: http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/booking-api/trips", s.serveTrips)
	mux.HandleFunc("/booking", s.servePage)

	s.Server = httptest.NewServer(gzhttp.GzipHandler(mux))
	t.Cleanup(s.Close)
	return s
}

// WithBody configures the trips API to answer status with body.
func (s *BookingServer) WithBody(status int, body []byte) *BookingServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
	return s
}

// WithDelay configures the trips API to wait before answering.
func (s *BookingServer) WithDelay(d time.Duration) *BookingServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// WithCSRFToken makes the landing page carry a csrf-token meta tag.
func (s *BookingServer) WithCSRFToken(token string) *BookingServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.csrfToken = token
	return s
}

// WithPageStatus configures the status of the landing page.
func (s *BookingServer) WithPageStatus(status int) *BookingServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageStatus = status
	return s
}

// TripsCalls returns how many times the trips API was called.
func (s *BookingServer) TripsCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tripsCalls
}

// PageCalls returns how many times booking pages were served.
func (s *BookingServer) PageCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageCalls
}

// LastQuery returns the query of the last trips API call.
func (s *BookingServer) LastQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastQuery
}

// LastHeaders returns the headers of the last trips API call.
func (s *BookingServer) LastHeaders() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastHeaders
}

func (s *BookingServer) serveTrips(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.tripsCalls++
	s.lastQuery = r.URL.Query()
	s.lastHeaders = r.Header.Clone()
	status, body, delay := s.status, s.body, s.delay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *BookingServer) servePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.pageCalls++
	status, token := s.pageStatus, s.csrfToken
	s.mu.Unlock()

	if _, err := r.Cookie("session"); err != nil {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "fake-session", Path: "/"})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	head := "<title>Booking</title>"
	if token != "" {
		head += `<meta name="csrf-token" content="` + token + `">`
	}
	_, _ = w.Write([]byte("<!DOCTYPE html><html><head>" + head + "</head><body></body></html>"))
}
