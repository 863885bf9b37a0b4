// Package main is the entry point for the cabin availability checker.
//
// By default it runs a single check and exits, which suits cron-style schedulers.
// With CHECKER_MODE=serve it exposes the check over HTTP instead.
//
//	@title						Cabin Availability Checker API
//	@version					1.0.0
//	@description				Checks a ferry operator's booking API for cabin availability on a route and date and emails an alert when allow-listed cabins are found.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/ferry-alerts/cabin-availability-checker/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	// Import generated docs for swagger
	_ "github.com/ferry-alerts/cabin-availability-checker/docs"

	checkhttp "github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http"
	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/http/middleware"
	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/notify/email"
	"github.com/ferry-alerts/cabin-availability-checker/internal/adapter/provider/minoan"
	"github.com/ferry-alerts/cabin-availability-checker/internal/config"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/logger"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/metrics"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/timeutil"
	"github.com/ferry-alerts/cabin-availability-checker/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	appLog := logger.New(cfg.Logging)
	logger.SetGlobal(appLog)

	log.Info().
		Str("env", cfg.App.Env).
		Str("mode", cfg.App.Mode).
		Str("route", cfg.SearchCriteria().Route()).
		Str("date", cfg.Search.Date).
		Msg("Configuration loaded")

	m := metrics.New()
	checker := newChecker(cfg, appLog, m)

	if !cfg.IsServeMode() {
		runOnce(cfg, checker)
		return
	}

	e := newServer(cfg, appLog, checker, m)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// newChecker wires the booking adapter and the mail notifier into the checker.
func newChecker(cfg *config.Config, appLog *logger.Logger, m *metrics.Metrics) usecase.AvailabilityChecker {
	searcher := minoan.NewAdapter(minoan.Config{
		BaseURL:          cfg.Booking.BaseURL,
		Language:         cfg.Booking.Language,
		Timeout:          cfg.Booking.Timeout,
		BootstrapSession: cfg.Booking.BootstrapSession,
	}, appLog)

	notifier := email.NewNotifier(email.Config{
		Host:      cfg.Mail.SMTPHost,
		Port:      cfg.Mail.SMTPPort,
		Sender:    cfg.Mail.Sender,
		Password:  cfg.Mail.Password,
		Recipient: cfg.Mail.Recipient,
		Subject:   cfg.Mail.Subject,
		Timezone:  cfg.Booking.Timezone,
	}, timeutil.NewRealClock(), appLog)

	return usecase.NewAvailabilityChecker(searcher, notifier,
		&usecase.Config{AllowList: cfg.AllowList()},
		usecase.WithLogger(appLog),
		usecase.WithMetrics(m),
	)
}

// runOnce performs a single check. The outcome is reported through the logs;
// the process exits 0 whatever the outcome so schedulers do not retry.
func runOnce(cfg *config.Config, checker usecase.AvailabilityChecker) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result := checker.CheckAvailability(ctx, cfg.SearchCriteria())

	event := log.Info()
	if result.Outcome.IsFailure() {
		event = log.Warn().Err(result.Err)
	}
	event.
		Str("run_id", result.RunID).
		Str("outcome", string(result.Outcome)).
		Bool("available", result.Available()).
		Int("cabins", len(result.Cabins)).
		Bool("notified", result.Notified).
		Msg("Check finished")
}

// newServer builds the Echo instance serving the checker API.
func newServer(cfg *config.Config, appLog *logger.Logger, checker usecase.AvailabilityChecker, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Stack traces stay out of production logs
	middleware.SetupWithConfig(e, appLog.Logger, middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()})

	handler := checkhttp.NewCheckHandler(checker, cfg.SearchCriteria(), cfg.Booking.Timezone)
	checkhttp.RegisterRoutes(e, handler, m.Handler(),
		middleware.RateLimit(middleware.RateLimitConfig{PerSecond: cfg.Server.RateLimit}),
	)
	return e
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
