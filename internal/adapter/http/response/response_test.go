package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "invalid body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "custom validation message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "date is required") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "date is required",
		},
		{
			name:        "rate limited",
			write:       TooManyRequests,
			wantStatus:  http.StatusTooManyRequests,
			wantCode:    CodeRateLimited,
			wantMessage: MsgRateLimited,
		},
		{
			name:        "service unavailable",
			write:       ServiceUnavailable,
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    CodeServiceUnavailable,
			wantMessage: MsgServiceUnavailable,
		},
		{
			name:        "internal error",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			result := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
		})
	}
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()

	details := map[string]string{
		"date":       "date must be in YYYY-MM-DD format",
		"passengers": "passengers must be between 1 and 9",
	}
	require.NoError(t, ValidationError(c, details))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	result := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Equal(t, details, result.Details)
}

func TestCheckResult(t *testing.T) {
	c, rec := setupEcho()

	body := map[string]interface{}{"outcome": "upstream_error", "available": false}
	require.NoError(t, CheckResult(c, http.StatusBadGateway, body))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "upstream_error", got["outcome"])
	assert.Equal(t, false, got["available"])
}
