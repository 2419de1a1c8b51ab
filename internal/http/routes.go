package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/heelo-node/internal/clock"
)

// RouterServices holds the dependencies needed by the HTTP router.
type RouterServices struct {
	// Clock stamps the root payload. Defaults to the system clock.
	Clock  clock.TimeProvider
	Logger *slog.Logger // optional
}

// NewRouter creates the mux for the three public routes. Method patterns also
// match HEAD; anything else falls through to ServeMux's 404/405 handling.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	root := NewRootHandlers(services.Clock)

	mux.HandleFunc("GET /{$}", root.Info)
	mux.HandleFunc("GET /readyz", readyHandler)
	mux.HandleFunc("GET /healthz", healthHandler)

	return mux
}

// NewHandler wraps the router with the standard middleware chain.
// Order: Recover -> RequestID -> Logging -> Router.
func NewHandler(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := NewRouter(services)
	h = Logging(logger)(h)
	h = RequestID()(h)
	h = Recover(logger)(h)

	return h
}
