package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers the checker API routes.
// Middleware only applies to the versioned API group.
func RegisterRoutes(e *echo.Echo, h *CheckHandler, metrics http.Handler, middleware ...echo.MiddlewareFunc) {
	// Operational endpoints (no version prefix)
	e.GET("/health", h.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.POST("/checks", h.RunCheck, middleware...)
}
