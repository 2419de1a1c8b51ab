package config

import (
	"log/slog"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseEnv(t *testing.T) AppConfig {
	t.Helper()
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	return cfg
}

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := parseEnv(t)

	assert.Equal(t, DefaultPort, cfg.HTTP.Port)
	assert.Equal(t, ":3000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:3000", cfg.HTTP.PublicURL())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestAppConfig_PortOverride(t *testing.T) {
	t.Setenv("PORT", " 4000 ")
	t.Setenv("HTTP_HOST", "127.0.0.1")

	cfg := parseEnv(t)

	assert.Equal(t, "4000", cfg.HTTP.Port)
	assert.Equal(t, "127.0.0.1:4000", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:4000", cfg.HTTP.PublicURL())
	require.NoError(t, cfg.Validate())
}

func TestHTTPConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{name: "default", port: "3000"},
		{name: "max", port: "65535"},
		{name: "zero", port: "0", wantErr: true},
		{name: "negative", port: "-1", wantErr: true},
		{name: "too large", port: "70000", wantErr: true},
		{name: "not a number", port: "http", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{Port: tt.port}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHTTPConfig_SanitizeFillsDefaults(t *testing.T) {
	cfg := HTTPConfig{Port: "  ", Host: " 0.0.0.0 ", ShutdownTimeout: -time.Second}
	cfg.Sanitize()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestAppConfig_LogLevel(t *testing.T) {
	cfg := AppConfig{LogLevel: " DEBUG "}
	cfg.Sanitize()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg = AppConfig{LogLevel: "verbose"}
	cfg.Sanitize()
	assert.Error(t, cfg.Validate())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
