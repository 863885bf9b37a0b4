package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// CheckResult writes a completed check with the status matching its outcome.
func CheckResult(c echo.Context, statusCode int, result interface{}) error {
	return c.JSON(statusCode, result)
}
