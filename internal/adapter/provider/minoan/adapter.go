// Package minoan implements the trip searcher for the Minoan Lines booking API.
package minoan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/klauspost/compress/gzhttp"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/logger"
)

// ProviderName is the unique identifier for the Minoan Lines booking API.
const ProviderName = "minoan_lines"

const (
	// DefaultBaseURL is the public booking site.
	DefaultBaseURL = "https://www.minoan.gr"

	// DefaultLanguage is the language requested from the booking API.
	DefaultLanguage = "en"

	// DefaultTimeout bounds one booking API round trip.
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 10 << 20

	// previewBytes is how much of a body is kept for logs and upstream errors.
	previewBytes = 500
)

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the booking site root (e.g., "https://www.minoan.gr")
	BaseURL string

	// Language is sent as the lang query parameter
	Language string

	// Timeout bounds each HTTP request
	Timeout time.Duration

	// BootstrapSession visits the booking page first to obtain cookies and a CSRF token
	BootstrapSession bool
}

// Adapter queries the booking API for trips and accommodation inventory.
// It keeps no state between searches: each search gets its own cookie jar.
type Adapter struct {
	baseURL   string
	language  string
	timeout   time.Duration
	bootstrap bool
	transport http.RoundTripper
	log       *logger.Logger
}

// NewAdapter creates a new booking API adapter.
// Zero values in cfg fall back to the public site defaults.
func NewAdapter(cfg Config, log *logger.Logger) *Adapter {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Language) == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Adapter{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		language:  cfg.Language,
		timeout:   cfg.Timeout,
		bootstrap: cfg.BootstrapSession,
		transport: gzhttp.Transport(http.DefaultTransport),
		log:       log.WithContext("provider", ProviderName),
	}
}

// Name returns the provider's unique identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// SearchTrips performs one trip search for criteria.
// Failures wrap domain.ErrTransport or domain.ErrMalformedResponse, or are a *domain.UpstreamError.
func (a *Adapter) SearchTrips(ctx context.Context, criteria domain.SearchCriteria) (domain.TripResponse, error) {
	client, err := a.newClient()
	if err != nil {
		return nil, domain.WrapTransport(err)
	}

	var csrfToken string
	if a.bootstrap {
		csrfToken, err = a.initSession(ctx, client, criteria)
		if err != nil {
			return nil, domain.WrapTransport(err)
		}
	}

	req, err := a.newTripsRequest(ctx, criteria)
	if err != nil {
		return nil, domain.WrapTransport(err)
	}
	if csrfToken != "" {
		req.Header.Set(headerCSRFToken, csrfToken)
	}

	a.log.Info().
		Str("url", req.URL.String()).
		Msg("Checking availability")

	resp, err := client.Do(req)
	if err != nil {
		return nil, domain.WrapTransport(fmt.Errorf("trips request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.WrapTransport(fmt.Errorf("read trips response: %w", err))
	}

	a.log.Info().
		Int("status", resp.StatusCode).
		Msg("Availability check status")
	a.log.Debug().
		Str("content_type", resp.Header.Get("Content-Type")).
		Str("preview", preview(body)).
		Msg("Response content preview")

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(resp.StatusCode, preview(body))
	}

	var trips domain.TripResponse
	if err := json.Unmarshal(body, &trips); err != nil {
		return nil, domain.WrapMalformed(err)
	}

	return trips, nil
}

// newClient returns an HTTP client with a fresh cookie jar for one search.
func (a *Adapter) newClient() (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &http.Client{
		Transport: a.transport,
		Timeout:   a.timeout,
		Jar:       jar,
	}, nil
}

// preview returns at most previewBytes of body as a string.
func preview(body []byte) string {
	if len(body) > previewBytes {
		return string(body[:previewBytes])
	}
	return string(body)
}

// Ensure Adapter implements domain.TripSearcher at compile time.
var _ domain.TripSearcher = (*Adapter)(nil)
