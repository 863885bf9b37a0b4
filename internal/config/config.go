// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
	"github.com/ferry-alerts/cabin-availability-checker/internal/infrastructure/logger"
)

// Run modes.
const (
	// ModeOnce runs a single check and exits
	ModeOnce = "once"

	// ModeServe exposes an HTTP endpoint that runs a check per request
	ModeServe = "serve"
)

// Config holds all application configuration.
type Config struct {
	Search  SearchConfig
	Booking BookingConfig
	Mail    MailConfig
	Server  ServerConfig
	Logging logger.Config
	App     AppConfig
}

// SearchConfig holds the search the checker watches.
type SearchConfig struct {
	Date       string `env:"SEARCH_DATE,required"`
	Passengers int    `env:"PASSENGERS,required"`
}

// BookingConfig holds booking API settings.
type BookingConfig struct {
	BaseURL          string        `env:"BOOKING_BASE_URL" envDefault:"https://www.minoan.gr"`
	Origin           string        `env:"BOOKING_ORIGIN" envDefault:"PIR"`
	Destination      string        `env:"BOOKING_DESTINATION" envDefault:"HER"`
	Language         string        `env:"BOOKING_LANGUAGE" envDefault:"en"`
	CabinCodes       []string      `env:"BOOKING_CABIN_CODES" envDefault:"AB3,A3" envSeparator:","`
	Timeout          time.Duration `env:"BOOKING_TIMEOUT" envDefault:"30s"`
	BootstrapSession bool          `env:"BOOKING_BOOTSTRAP_SESSION" envDefault:"false"`
	Timezone         string        `env:"BOOKING_TIMEZONE" envDefault:"Europe/Athens"`
}

// MailConfig holds notification mail settings.
type MailConfig struct {
	Sender    string `env:"EMAIL_SENDER,required"`
	Password  string `env:"EMAIL_PASSWORD,required,unset"`
	Recipient string `env:"EMAIL_RECIPIENT,required"`
	SMTPHost  string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort  int    `env:"SMTP_PORT" envDefault:"465"`
	Subject   string `env:"MAIL_SUBJECT" envDefault:"Minoan Lines - Cabin Available!"`
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	RateLimit    float64       `env:"SERVER_RATE_LIMIT" envDefault:"1"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Mode string `env:"CHECKER_MODE" envDefault:"once"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	criteria := cfg.SearchCriteria()
	if err := criteria.Validate(); err != nil {
		return fmt.Errorf("SEARCH_DATE/PASSENGERS/BOOKING_ORIGIN/BOOKING_DESTINATION: %w", err)
	}

	u, err := url.Parse(cfg.Booking.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BOOKING_BASE_URL must be an absolute URL, got %q", cfg.Booking.BaseURL)
	}
	if len(cfg.AllowList()) == 0 {
		return fmt.Errorf("BOOKING_CABIN_CODES must list at least one accommodation code")
	}
	if cfg.Booking.Timeout <= 0 {
		return fmt.Errorf("BOOKING_TIMEOUT must be positive")
	}
	if _, err := time.LoadLocation(cfg.Booking.Timezone); err != nil {
		return fmt.Errorf("BOOKING_TIMEZONE is not a known timezone: %q", cfg.Booking.Timezone)
	}

	if !strings.Contains(cfg.Mail.Sender, "@") {
		return fmt.Errorf("EMAIL_SENDER must be an email address, got %q", cfg.Mail.Sender)
	}
	if !strings.Contains(cfg.Mail.Recipient, "@") {
		return fmt.Errorf("EMAIL_RECIPIENT must be an email address, got %q", cfg.Mail.Recipient)
	}
	if cfg.Mail.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST is required")
	}
	if cfg.Mail.SMTPPort < 1 || cfg.Mail.SMTPPort > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", cfg.Mail.SMTPPort)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimit <= 0 {
		return fmt.Errorf("SERVER_RATE_LIMIT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if cfg.App.Mode != ModeOnce && cfg.App.Mode != ModeServe {
		return fmt.Errorf("CHECKER_MODE must be one of: once, serve; got %q", cfg.App.Mode)
	}

	return nil
}

// SearchCriteria builds the search criteria the checker runs with.
func (c *Config) SearchCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:      strings.ToUpper(strings.TrimSpace(c.Booking.Origin)),
		Destination: strings.ToUpper(strings.TrimSpace(c.Booking.Destination)),
		Date:        strings.TrimSpace(c.Search.Date),
		Passengers:  c.Search.Passengers,
	}
}

// AllowList returns the configured accommodation codes as an allow-list.
func (c *Config) AllowList() domain.AllowList {
	return domain.NewAllowList(c.Booking.CabinCodes...)
}

// IsServeMode returns true if the checker should run as an HTTP service.
func (c *Config) IsServeMode() bool {
	return c.App.Mode == ModeServe
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
