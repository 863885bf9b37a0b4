package integration

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http/middleware"
	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http/response"
	fixtures "github.com/ferry-alerts/cabin-availability-checker/test/testutil"
)

func TestAPI_RunCheck_Available(t *testing.T) {
	env := NewEnv(t)
	env.ServeFixture(t, fixtures.TripsAvailable)
	ts := NewTestServer(env, 0)

	resp := ts.RunCheck(nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.NotEmpty(t, resp.Headers.Get(middleware.RequestIDHeader))

	body, err := resp.ParseCheckResponse()
	require.NoError(t, err)
	assert.Equal(t, "available", body.Outcome)
	assert.True(t, body.Available)
	assert.True(t, body.Notified)
	assert.Equal(t, "PIR-HER", body.Route)
	assert.Equal(t, "Sun 01 Jun 2025 08:00 EEST", body.DepartureTimeLocal)
	require.Len(t, body.Cabins, 1)
	assert.Equal(t, "Cabin A", body.Cabins[0].Name)
	assert.NotEmpty(t, body.RunID)

	assert.Equal(t, 1, env.Notifier.Count())
}

func TestAPI_RunCheck_Overrides(t *testing.T) {
	env := NewEnv(t)
	env.ServeFixture(t, fixtures.TripsSoldOut)
	ts := NewTestServer(env, 0)

	resp := ts.RunCheck(map[string]interface{}{"date": "2025-07-20", "passengers": 3})

	require.Equal(t, http.StatusOK, resp.Code)
	body, err := resp.ParseCheckResponse()
	require.NoError(t, err)
	assert.Equal(t, "no_availability", body.Outcome)
	assert.Equal(t, "2025-07-20", body.Date)
	assert.Equal(t, 3, body.Passengers)

	q := env.Booking.LastQuery()
	assert.Equal(t, "2025-07-20", q.Get("date"))
	assert.Equal(t, "3", q.Get("passengers"))
}

func TestAPI_RunCheck_FailureStatuses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    int
		wantOutcome string
	}{
		{name: "upstream 500", status: http.StatusInternalServerError, body: "oops", wantCode: http.StatusBadGateway, wantOutcome: "upstream_error"},
		{name: "malformed json", status: http.StatusOK, body: "{", wantCode: http.StatusBadGateway, wantOutcome: "parse_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv(t)
			env.Booking.WithBody(tt.status, []byte(tt.body))
			ts := NewTestServer(env, 0)

			resp := ts.RunCheck(nil)

			assert.Equal(t, tt.wantCode, resp.Code)
			body, err := resp.ParseCheckResponse()
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, body.Outcome)
			assert.False(t, body.Available)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, 0, env.Notifier.Count())
		})
	}
}

func TestAPI_RunCheck_BookingSiteDown(t *testing.T) {
	env := NewEnv(t)
	env.Booking.Close()
	ts := NewTestServer(env, 0)

	resp := ts.RunCheck(nil)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
	body, err := resp.ParseCheckResponse()
	require.NoError(t, err)
	assert.Equal(t, "transport_error", body.Outcome)
}

func TestAPI_RunCheck_ValidationError(t *testing.T) {
	env := NewEnv(t)
	ts := NewTestServer(env, 0)

	resp := ts.RunCheck(map[string]interface{}{"passengers": 20})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, string(resp.Body), response.CodeValidationError)
	assert.Equal(t, 0, env.Booking.TripsCalls())
}

func TestAPI_RateLimited(t *testing.T) {
	env := NewEnv(t)
	ts := NewTestServer(env, 0.001)

	first := ts.RunCheck(nil)
	second := ts.RunCheck(nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, string(second.Body), response.CodeRateLimited)
	assert.Equal(t, 1, env.Booking.TripsCalls())

	// Operational endpoints are not limited
	assert.Equal(t, http.StatusOK, ts.Do(http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, ts.Do(http.MethodGet, "/health", nil).Code)
}

func TestAPI_Metrics(t *testing.T) {
	env := NewEnv(t)
	env.ServeFixture(t, fixtures.TripsAvailable)
	ts := NewTestServer(env, 0)

	require.Equal(t, http.StatusOK, ts.RunCheck(nil).Code)

	resp := ts.Do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	text := string(resp.Body)
	assert.Contains(t, text, `cabin_checker_checks_total{outcome="available",route="PIR-HER"} 1`)
	assert.Contains(t, text, `cabin_checker_notifications_total{status="sent"} 1`)
	assert.Contains(t, text, `cabin_checker_available_cabins{route="PIR-HER"} 1`)
	assert.True(t, strings.Contains(text, "go_goroutines"), "runtime collectors are registered")
}

func TestAPI_Health(t *testing.T) {
	ts := NewTestServer(NewEnv(t), 0)

	resp := ts.Do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}
