package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// DefaultPort is used when PORT is unset or empty.
const DefaultPort = "3000"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Port is the TCP port to listen on. Kept as a string so an empty PORT
	// falls back to DefaultPort instead of failing to parse.
	Port string `env:"PORT"`

	// Host is the interface to bind. Empty binds all interfaces.
	Host string `env:"HTTP_HOST" envDefault:""`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.Port = strings.TrimSpace(h.Port)
	if h.Port == "" {
		h.Port = DefaultPort
	}
	h.Host = strings.TrimSpace(h.Host)

	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 10 * time.Second
	}
}

// Validate checks that Port is a usable TCP port.
func (h *HTTPConfig) Validate() error {
	port, err := strconv.Atoi(h.Port)
	if err != nil {
		return fmt.Errorf("invalid PORT %q: %w", h.Port, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}
	return nil
}

// Addr returns the host:port listen address.
func (h *HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// PublicURL is the address announced in the startup log line.
func (h *HTTPConfig) PublicURL() string {
	return "http://localhost:" + h.Port
}
