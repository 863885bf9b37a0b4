// Package usecase contains the business logic of the cabin availability checker.
// It runs one fetch-parse-filter-notify pass per check.
package usecase

import (
	"github.com/google/uuid"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/logger"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/metrics"
)

// Config contains configuration options for the checker.
type Config struct {
	// AllowList holds the accommodation codes worth alerting on
	AllowList domain.AllowList
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		AllowList: domain.NewAllowList(domain.DefaultCabinCodes...),
	}
}

// Option customizes a checker.
type Option func(*availabilityChecker)

// WithLogger sets the logger checks are reported through.
func WithLogger(l *logger.Logger) Option {
	return func(c *availabilityChecker) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics sets the collectors updated after every check.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *availabilityChecker) {
		c.metrics = m
	}
}

// WithRunIDGenerator overrides how run IDs are generated.
func WithRunIDGenerator(fn func() string) Option {
	return func(c *availabilityChecker) {
		if fn != nil {
			c.newRunID = fn
		}
	}
}

// defaultRunID returns a random UUID.
func defaultRunID() string {
	return uuid.NewString()
}
