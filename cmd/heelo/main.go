package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/target/heelo-node/config"
	"github.com/target/heelo-node/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	bootstrap.SetLogLevel(cfg.SlogLevel())

	logStartupInfo(ctx, logger, &cfg)

	ctx, stop := bootstrap.SignalContext(ctx)
	defer stop()

	return bootstrap.Run(ctx, bootstrap.HTTPServerConfig{
		HTTP:   cfg.HTTP,
		Logger: logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.DebugContext(ctx, "starting heelo-node service",
		"addr", cfg.HTTP.Addr(),
		"log_level", cfg.LogLevel)
}
