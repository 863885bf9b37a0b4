package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http/response"
)

// RateLimitConfig bounds how often checks can be triggered over HTTP.
type RateLimitConfig struct {
	// PerSecond is the sustained number of requests allowed per client
	PerSecond float64

	// Burst is the number of requests allowed at once; defaults to 1
	Burst int

	// ExpiresIn is how long an idle client's bucket is kept
	ExpiresIn time.Duration
}

// RateLimit returns middleware limiting requests per client IP with a token bucket.
// A non-positive PerSecond disables limiting.
func RateLimit(config RateLimitConfig) echo.MiddlewareFunc {
	if config.PerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if config.Burst < 1 {
		config.Burst = 1
	}
	if config.ExpiresIn <= 0 {
		config.ExpiresIn = 3 * time.Minute
	}

	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(config.PerSecond),
		Burst:     config.Burst,
		ExpiresIn: config.ExpiresIn,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.InternalServerError(c)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c)
		},
	})
}
