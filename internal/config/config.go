package config

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the settings of both binaries. Values come from the
// environment; main loads .env first.
type Config struct {
	Port           int
	EmployeeAPIURL string
	// HTTPTimeout bounds each call to the employee API. Zero means no limit.
	HTTPTimeout time.Duration
	SessionTTL  time.Duration
	LogLevel    string

	MockStore MockStoreConfig
}

type MockStoreConfig struct {
	Port     int
	DBPath   string
	BasePath string
}

const DefaultEmployeeAPIURL = "https://67d7ece99d5e3a10152c999f.mockapi.io/employeedetails/email"

// Load reads the environment. Values that are set but cannot be parsed are
// reported alongside the validation errors.
func Load() (*Config, error) {
	var parseErrs []string
	asInt := func(key string, def int) int {
		v, err := getEnvAsInt(key, def)
		if err != nil {
			parseErrs = append(parseErrs, err.Error())
		}
		return v
	}
	asDuration := func(key string, def time.Duration) time.Duration {
		v, err := getEnvAsDuration(key, def)
		if err != nil {
			parseErrs = append(parseErrs, err.Error())
		}
		return v
	}

	cfg := &Config{
		Port:           asInt("PORT", 8080),
		EmployeeAPIURL: getEnv("EMPLOYEE_API_URL", DefaultEmployeeAPIURL),
		HTTPTimeout:    asDuration("HTTP_TIMEOUT", 0),
		SessionTTL:     asDuration("SESSION_TTL", 12*time.Hour),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		MockStore: MockStoreConfig{
			Port:     asInt("MOCKSTORE_PORT", 8081),
			DBPath:   getEnv("MOCKSTORE_DB_PATH", "employees.db"),
			BasePath: getEnv("MOCKSTORE_BASE_PATH", "/employeedetails/email"),
		},
	}
	if len(parseErrs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: validation errors: %s", strings.Join(parseErrs, "; "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, "port must be between 1 and 65535")
	}
	if c.MockStore.Port < 1 || c.MockStore.Port > 65535 {
		errs = append(errs, "mock store port must be between 1 and 65535")
	}
	if u, err := url.Parse(c.EmployeeAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, "employee API URL must be an absolute URL")
	}
	if c.HTTPTimeout < 0 {
		errs = append(errs, "HTTP timeout cannot be negative")
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, "session TTL must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}

// logOutput is where Logger writes.
var logOutput io.Writer = os.Stderr

// Logger returns a text logger on stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	level, _ := c.SlogLevel()
	return slog.New(slog.NewTextHandler(logOutput, &slog.HandlerOptions{Level: level}))
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return intVal, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: invalid duration %q", key, value)
	}
	return duration, nil
}
