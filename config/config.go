package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// AppConfig is the main application configuration struct.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See http.go for the listener settings.
type AppConfig struct {
	// LogLevel is the minimum slog level emitted (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server configuration
	HTTP HTTPConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.HTTP.Sanitize()
}

// Validate reports configuration that cannot be used to start the service.
func (c *AppConfig) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// SlogLevel returns the configured log level, falling back to info.
func (c *AppConfig) SlogLevel() slog.Level {
	lvl, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLogLevel maps a level name onto a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
