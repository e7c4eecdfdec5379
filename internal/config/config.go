package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"econhub/internal"
	"econhub/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Forecast ForecastConfig
}

// ServerConfig holds settings for the API server and the pages app
type ServerConfig struct {
	Port            string
	UIPort          string
	GinMode         string
	ShutdownTimeout time.Duration
	// PublicOrigin overrides the origin used in share links. Empty means the
	// origin is derived from each request.
	PublicOrigin string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level internal.LogLevel
}

// ForecastConfig holds predictive engine defaults
type ForecastConfig struct {
	Steps   int
	Samples int
	Seed    uint64
}

// MaxForecastSamples bounds the Monte Carlo draws of a single forecast
const MaxForecastSamples = 100_000

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   *loadServerConfig(),
		Logging:  *loadLoggingConfig(),
		Forecast: *loadForecastConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Addr returns the listen address of the API server
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// UIAddr returns the listen address of the pages app
func (s ServerConfig) UIAddr() string {
	return ":" + s.UIPort
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "3000"),
		UIPort:          getEnvOrDefault("UI_PORT", "3001"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 5*time.Second),
		PublicOrigin:    getEnvOrDefault("PUBLIC_ORIGIN", ""),
	}
}

func loadLoggingConfig() *LoggingConfig {
	level, _ := internal.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	return &LoggingConfig{Level: level}
}

func loadForecastConfig() *ForecastConfig {
	return &ForecastConfig{
		Steps:   getEnvIntOrDefault("FORECAST_STEPS", 12),
		Samples: getEnvIntOrDefault("FORECAST_SAMPLES", 1000),
		Seed:    uint64(getEnvIntOrDefault("FORECAST_SEED", 42)),
	}
}

func validateConfig(config *Config) error {
	if err := validatePort("PORT", config.Server.Port); err != nil {
		return err
	}
	if err := validatePort("UI_PORT", config.Server.UIPort); err != nil {
		return err
	}
	switch config.Server.GinMode {
	case "debug", "release", "test":
	default:
		return errors.ConfigInvalid(fmt.Sprintf("GIN_MODE must be debug, release or test, got %q", config.Server.GinMode))
	}
	if config.Server.ShutdownTimeout <= 0 {
		return errors.ConfigInvalid("SHUTDOWN_TIMEOUT must be positive")
	}
	if config.Forecast.Steps <= 0 {
		return errors.ConfigInvalid("FORECAST_STEPS must be positive")
	}
	if config.Forecast.Samples <= 0 || config.Forecast.Samples > MaxForecastSamples {
		return errors.ConfigInvalid(fmt.Sprintf("FORECAST_SAMPLES must be between 1 and %d", MaxForecastSamples))
	}
	return nil
}

func validatePort(name, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil || port < 0 || port > 65535 {
		return errors.ConfigInvalid(fmt.Sprintf("%s must be a port number, got %q", name, value))
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
