// Package integration provides helpers and integration tests for the cabin availability checker.
// Integration tests run the real booking adapter against a fake booking site and
// drive the checker either directly or through the HTTP trigger API.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http"
	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http/middleware"
	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/provider/minoan"
	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/logger"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/metrics"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/timeutil"
	"github.com/ferry-alerts/cabin-availability-checker/internal/usecase"
	"github.com/ferry-alerts/cabin-availability-checker/test/mock"
	"github.com/ferry-alerts/cabin-availability-checker/test/testutil"
)

// Env bundles the fakes and the real components under test.
type Env struct {
	Booking  *mock.BookingServer
	Notifier *mock.Notifier
	Metrics  *metrics.Metrics
	Checker  usecase.AvailabilityChecker
}

// EnvOption customizes the adapter configuration of an Env.
type EnvOption func(*minoan.Config)

// WithBootstrap enables the session bootstrap on the adapter.
func WithBootstrap() EnvOption {
	return func(c *minoan.Config) { c.BootstrapSession = true }
}

// WithTimeout sets the adapter request timeout.
func WithTimeout(d time.Duration) EnvOption {
	return func(c *minoan.Config) { c.Timeout = d }
}

// NewEnv wires a checker to a fresh fake booking site and a recording notifier.
func NewEnv(t *testing.T, opts ...EnvOption) *Env {
	t.Helper()

	booking := mock.NewBookingServer(t)
	cfg := minoan.Config{BaseURL: booking.URL, Language: "en", Timeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	notifier := mock.NewNotifier()
	m := metrics.New()

	checker := usecase.NewAvailabilityChecker(
		minoan.NewAdapter(cfg, logger.Nop()),
		notifier,
		nil,
		usecase.WithMetrics(m),
	)

	return &Env{
		Booking:  booking,
		Notifier: notifier,
		Metrics:  m,
		Checker:  checker,
	}
}

// TestServer wraps an Echo instance serving the checker API.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer creates a test server for the env's checker with the default criteria.
// A non-positive rateLimit disables rate limiting.
func NewTestServer(env *Env, rateLimit float64) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop().Logger)

	handler := httpAdapter.NewCheckHandler(env.Checker, testutil.DefaultCriteria(), timeutil.Athens)
	httpAdapter.RegisterRoutes(e, handler, env.Metrics.Handler(),
		middleware.RateLimit(middleware.RateLimitConfig{PerSecond: rateLimit}),
	)

	return &TestServer{Echo: e}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(method, path string, body interface{}) Response {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// RunCheck triggers a check with optional overrides.
func (ts *TestServer) RunCheck(body interface{}) Response {
	return ts.Do(http.MethodPost, "/api/v1/checks", body)
}

// ParseCheckResponse parses the response body as a CheckResponse.
func (r *Response) ParseCheckResponse() (*httpAdapter.CheckResponse, error) {
	var resp httpAdapter.CheckResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ServeFixture configures the fake booking site to answer 200 with a testdata file.
func (env *Env) ServeFixture(t *testing.T, name string) {
	t.Helper()
	env.Booking.WithBody(http.StatusOK, testutil.LoadTestJSON(t, name))
}

// Check runs one check with the default criteria.
func (env *Env) Check(t *testing.T) domain.CheckResult {
	t.Helper()
	return env.Checker.CheckAvailability(t.Context(), testutil.DefaultCriteria())
}
