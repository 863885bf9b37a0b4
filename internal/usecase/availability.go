package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/logger"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/metrics"
)

// AvailabilityChecker defines the interface for cabin availability checks.
type AvailabilityChecker interface {
	// CheckAvailability runs one check for criteria and notifies the user when cabins are found.
	// It never returns an error: failures are reported through the result's Outcome.
	CheckAvailability(ctx context.Context, criteria domain.SearchCriteria) domain.CheckResult
}

// availabilityChecker implements AvailabilityChecker as a single fetch-parse-filter-notify pass.
type availabilityChecker struct {
	searcher domain.TripSearcher
	notifier domain.Notifier
	allow    domain.AllowList
	metrics  *metrics.Metrics
	log      *logger.Logger
	newRunID func() string
}

// NewAvailabilityChecker creates a new AvailabilityChecker.
// If config is nil or has an empty allow-list, the default cabin codes are used.
func NewAvailabilityChecker(searcher domain.TripSearcher, notifier domain.Notifier, config *Config, opts ...Option) AvailabilityChecker {
	cfg := DefaultConfig()
	if config != nil && len(config.AllowList) > 0 {
		cfg.AllowList = config.AllowList
	}

	c := &availabilityChecker{
		searcher: searcher,
		notifier: notifier,
		allow:    cfg.AllowList,
		log:      logger.Nop(),
		newRunID: defaultRunID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckAvailability implements AvailabilityChecker.CheckAvailability.
func (c *availabilityChecker) CheckAvailability(ctx context.Context, criteria domain.SearchCriteria) domain.CheckResult {
	start := time.Now()
	result := domain.CheckResult{
		RunID:    c.newRunID(),
		Criteria: criteria,
	}
	log := c.log.WithRunID(result.RunID).WithRoute(criteria.Route())

	defer func() {
		c.metrics.ObserveCheck(criteria.Route(), string(result.Outcome), len(result.Cabins), time.Since(start))
	}()

	log.Info().
		Str("date", criteria.Date).
		Int("passengers", criteria.Passengers).
		Strs("cabin_codes", c.allow.Codes()).
		Msg("Checking availability")

	trips, err := c.searchTrips(ctx, criteria)
	if err != nil {
		c.fail(&result, log, err)
		return result
	}

	leg, ok := trips.FirstLeg()
	if !ok {
		result.Outcome = domain.OutcomeNoAvailability
		log.Info().Str("date", criteria.Date).Msg("No trips found for date")
		return result
	}
	result.DepartureTime = leg.DepartureDateTime

	if err := domain.CheckOptions(leg, c.allow); err != nil {
		c.fail(&result, log, err)
		return result
	}

	cabins := domain.SelectAvailableCabins(leg, c.allow)
	if len(cabins) == 0 {
		result.Outcome = domain.OutcomeNoAvailability
		log.Info().
			Str("date", criteria.Date).
			Str("departure", leg.DepartureDateTime).
			Int("options", len(leg.Accommodations.Passenger)).
			Msg("No cabins available for date")
		return result
	}

	result.Outcome = domain.OutcomeAvailable
	result.Cabins = cabins

	err = c.notify(ctx, domain.Notification{
		Criteria:      criteria,
		Cabins:        cabins,
		DepartureTime: leg.DepartureDateTime,
		BookingURL:    c.searcher.BookingURL(criteria),
	})
	c.metrics.ObserveNotification(err)
	if err != nil {
		result.NotifyErr = err
		log.Error().Err(err).Msg("Error sending notification")
	} else {
		result.Notified = true
	}

	log.Info().
		Str("date", criteria.Date).
		Str("departure", leg.DepartureDateTime).
		Int("cabins", len(cabins)).
		Bool("notified", result.Notified).
		Msg("Cabins found available for date")

	return result
}

// searchTrips calls the searcher, converting a panic into a transport error.
func (c *availabilityChecker) searchTrips(ctx context.Context, criteria domain.SearchCriteria) (trips domain.TripResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			trips = nil
			err = domain.WrapTransport(fmt.Errorf("trip searcher panic: %v", r))
		}
	}()
	return c.searcher.SearchTrips(ctx, criteria)
}

// notify calls the notifier, converting a panic into an error.
func (c *availabilityChecker) notify(ctx context.Context, n domain.Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panic: %v", r)
		}
	}()
	return c.notifier.Notify(ctx, n)
}

// fail records err on result and logs it.
func (c *availabilityChecker) fail(result *domain.CheckResult, log *logger.Logger, err error) {
	result.Outcome = domain.ClassifyError(err)
	result.Err = err
	if upstream, ok := domain.IsUpstream(err); ok {
		result.StatusCode = upstream.StatusCode
	}
	c.logFailure(log, err, result.Outcome)
}

// logFailure logs a failed search with context for its kind.
func (c *availabilityChecker) logFailure(log *logger.Logger, err error, outcome domain.Outcome) {
	event := log.Error().Err(err).Str("outcome", string(outcome))

	switch outcome {
	case domain.OutcomeUpstreamError:
		if upstream, ok := domain.IsUpstream(err); ok {
			event = event.Int("status", upstream.StatusCode).Str("body", upstream.Body)
		}
		event.Msg("Error response from booking API")
	case domain.OutcomeParseError:
		event.Msg("JSON decode error")
	default:
		event.Msg("Error checking availability")
	}
}
