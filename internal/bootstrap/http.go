package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/target/heelo-node/config"
	"github.com/target/heelo-node/internal/clock"
	httpx "github.com/target/heelo-node/internal/http"
	"golang.org/x/sync/errgroup"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	HTTP   config.HTTPConfig
	Clock  clock.TimeProvider // optional; defaults to the system clock
	Logger *slog.Logger
}

// NewHTTPServer builds the server with the full middleware chain. It does not listen.
func NewHTTPServer(cfg HTTPServerConfig) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	handler := httpx.NewHandler(httpx.RouterServices{
		Clock:  cfg.Clock,
		Logger: logger,
	})

	return &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
}

// Listen binds the configured address so bind failures surface before serving.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Run binds, logs the startup line and serves until ctx is done or the server
// fails. On ctx cancellation the server is drained within HTTP.ShutdownTimeout.
func Run(ctx context.Context, cfg HTTPServerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
		cfg.Logger = logger
	}

	server := NewHTTPServer(cfg)
	ln, err := Listen(ctx, server.Addr)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "server started on the port",
		"url", cfg.HTTP.PublicURL(),
		"addr", ln.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return ShutdownHTTPServer(ShutdownConfig{
			Context: context.WithoutCancel(ctx),
			Server:  server,
			Timeout: cfg.HTTP.ShutdownTimeout,
			Logger:  logger,
		})
	})

	return g.Wait()
}
