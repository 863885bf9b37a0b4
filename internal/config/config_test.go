package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferry-alerts/cabin-availability-checker/internal/domain"
)

// TestLoad_Defaults tests that all default values load correctly with only required env vars.
func TestLoad_Defaults(t *testing.T) {
	setupEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)

	// Search
	assert.Equal(t, "2025-06-01", cfg.Search.Date)
	assert.Equal(t, 2, cfg.Search.Passengers)

	// Booking defaults
	assert.Equal(t, "https://www.minoan.gr", cfg.Booking.BaseURL, "default booking base url")
	assert.Equal(t, "PIR", cfg.Booking.Origin, "default origin")
	assert.Equal(t, "HER", cfg.Booking.Destination, "default destination")
	assert.Equal(t, "en", cfg.Booking.Language, "default language")
	assert.Equal(t, []string{"AB3", "A3"}, cfg.Booking.CabinCodes, "default cabin codes")
	assert.Equal(t, "30s", cfg.Booking.Timeout.String(), "default booking timeout")
	assert.False(t, cfg.Booking.BootstrapSession, "session bootstrap off by default")
	assert.Equal(t, "Europe/Athens", cfg.Booking.Timezone)

	// Mail defaults
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.SMTPHost)
	assert.Equal(t, 465, cfg.Mail.SMTPPort)
	assert.Equal(t, "Minoan Lines - Cabin Available!", cfg.Mail.Subject)
	assert.Equal(t, "secret", cfg.Mail.Password)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "1m0s", cfg.Server.WriteTimeout.String(), "default write timeout")
	assert.Equal(t, 1.0, cfg.Server.RateLimit)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.Equal(t, "cabin-checker", cfg.Logging.ServiceName)

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
	assert.Equal(t, ModeOnce, cfg.App.Mode, "default mode")
	assert.False(t, cfg.IsServeMode())
}

// TestLoad_PasswordUnsetAfterParse tests that the mail credential does not linger in the environment.
func TestLoad_PasswordUnsetAfterParse(t *testing.T) {
	setupEnv(t, nil)

	_, err := Load()
	require.NoError(t, err)

	_, present := os.LookupEnv("EMAIL_PASSWORD")
	assert.False(t, present)
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	setupEnv(t, map[string]string{
		"BOOKING_BASE_URL":          "http://localhost:9999",
		"BOOKING_ORIGIN":            "her",
		"BOOKING_DESTINATION":       "pir",
		"BOOKING_CABIN_CODES":       "AB3,A3,D",
		"BOOKING_TIMEOUT":           "5s",
		"BOOKING_BOOTSTRAP_SESSION": "true",
		"SMTP_HOST":                 "mail.example.com",
		"SMTP_PORT":                 "2465",
		"SERVER_PORT":               "3000",
		"SERVER_RATE_LIMIT":         "0.5",
		"LOG_LEVEL":                 "debug",
		"LOG_FORMAT":                "console",
		"APP_ENV":                   "production",
		"CHECKER_MODE":              "serve",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Booking.BaseURL)
	assert.Equal(t, []string{"AB3", "A3", "D"}, cfg.Booking.CabinCodes)
	assert.Equal(t, "5s", cfg.Booking.Timeout.String())
	assert.True(t, cfg.Booking.BootstrapSession)
	assert.Equal(t, "mail.example.com", cfg.Mail.SMTPHost)
	assert.Equal(t, 2465, cfg.Mail.SMTPPort)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Server.RateLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.IsServeMode())

	criteria := cfg.SearchCriteria()
	assert.Equal(t, domain.SearchCriteria{
		Origin:      "HER",
		Destination: "PIR",
		Date:        "2025-06-01",
		Passengers:  2,
	}, criteria)
	assert.True(t, cfg.AllowList().Contains("D"))
}

// TestLoad_MissingRequired tests that every required variable fails fast when absent.
func TestLoad_MissingRequired(t *testing.T) {
	for _, name := range []string{"SEARCH_DATE", "PASSENGERS", "EMAIL_SENDER", "EMAIL_PASSWORD", "EMAIL_RECIPIENT"} {
		t.Run(name, func(t *testing.T) {
			setupEnv(t, nil)
			os.Unsetenv(name)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation tests descriptive validation failures.
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		errMsg string
	}{
		{"bad date format", map[string]string{"SEARCH_DATE": "01/06/2025"}, "YYYY-MM-DD"},
		{"zero passengers", map[string]string{"PASSENGERS": "0"}, "passengers must be at least 1"},
		{"too many passengers", map[string]string{"PASSENGERS": "12"}, "passengers cannot exceed 9"},
		{"non numeric passengers", map[string]string{"PASSENGERS": "two"}, "Passengers"},
		{"same route ends", map[string]string{"BOOKING_DESTINATION": "PIR"}, "must be different"},
		{"relative base url", map[string]string{"BOOKING_BASE_URL": "/booking"}, "BOOKING_BASE_URL must be an absolute URL"},
		{"blank cabin codes", map[string]string{"BOOKING_CABIN_CODES": " , "}, "BOOKING_CABIN_CODES"},
		{"zero booking timeout", map[string]string{"BOOKING_TIMEOUT": "0s"}, "BOOKING_TIMEOUT must be positive"},
		{"unknown timezone", map[string]string{"BOOKING_TIMEZONE": "Mars/Olympus"}, "BOOKING_TIMEZONE"},
		{"sender without at", map[string]string{"EMAIL_SENDER": "alerts"}, "EMAIL_SENDER must be an email address"},
		{"recipient without at", map[string]string{"EMAIL_RECIPIENT": "me"}, "EMAIL_RECIPIENT must be an email address"},
		{"smtp port too high", map[string]string{"SMTP_PORT": "70000"}, "SMTP_PORT must be between 1 and 65535"},
		{"server port zero", map[string]string{"SERVER_PORT": "0"}, "SERVER_PORT must be between 1 and 65535"},
		{"zero read timeout", map[string]string{"SERVER_READ_TIMEOUT": "0s"}, "SERVER_READ_TIMEOUT must be positive"},
		{"negative write timeout", map[string]string{"SERVER_WRITE_TIMEOUT": "-1s"}, "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero rate limit", map[string]string{"SERVER_RATE_LIMIT": "0"}, "SERVER_RATE_LIMIT must be positive"},
		{"invalid log level", map[string]string{"LOG_LEVEL": "trace"}, "LOG_LEVEL must be one of"},
		{"invalid log format", map[string]string{"LOG_FORMAT": "text"}, "LOG_FORMAT must be one of"},
		{"invalid app env", map[string]string{"APP_ENV": "local"}, "APP_ENV must be one of"},
		{"invalid mode", map[string]string{"CHECKER_MODE": "daemon"}, "CHECKER_MODE must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t, tt.env)

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	setupEnv(t, nil)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	setupEnv(t, map[string]string{"PASSENGERS": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// Helper functions

// configEnvVars lists every variable the config reads.
var configEnvVars = []string{
	"SEARCH_DATE", "PASSENGERS",
	"BOOKING_BASE_URL", "BOOKING_ORIGIN", "BOOKING_DESTINATION", "BOOKING_LANGUAGE",
	"BOOKING_CABIN_CODES", "BOOKING_TIMEOUT", "BOOKING_BOOTSTRAP_SESSION", "BOOKING_TIMEZONE",
	"EMAIL_SENDER", "EMAIL_PASSWORD", "EMAIL_RECIPIENT", "SMTP_HOST", "SMTP_PORT", "MAIL_SUBJECT",
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_RATE_LIMIT",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_CALLER", "SERVICE_NAME",
	"APP_ENV", "CHECKER_MODE",
}

// setupEnv clears config variables, sets the required ones and applies overrides.
// Values are restored when the test ends.
func setupEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
	for _, v := range configEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}

	vars := map[string]string{
		"SEARCH_DATE":     "2025-06-01",
		"PASSENGERS":      "2",
		"EMAIL_SENDER":    "alerts@example.com",
		"EMAIL_PASSWORD":  "secret",
		"EMAIL_RECIPIENT": "traveller@example.com",
	}
	for k, v := range overrides {
		vars[k] = v
	}
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
