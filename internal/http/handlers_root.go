package httpx

import (
	"net/http"
	"os"

	"github.com/target/heelo-node/internal/clock"
)

// rootResponse is the informational payload served at "/".
type rootResponse struct {
	Message string `json:"message"`
	Service string `json:"service"`
	Pod     string `json:"pod"`
	Time    string `json:"time"`
}

// RootHandlers serves the informational root endpoint.
type RootHandlers struct {
	Clock clock.TimeProvider
	// Getenv is consulted on every request; defaults to os.Getenv.
	Getenv func(string) string
}

// NewRootHandlers returns RootHandlers backed by clk, or the real clock when nil.
func NewRootHandlers(clk clock.TimeProvider) *RootHandlers {
	if clk == nil {
		clk = clock.RealTimeProvider{}
	}
	return &RootHandlers{Clock: clk, Getenv: os.Getenv}
}

// Info writes the service banner with the pod identifier and current time.
func (h *RootHandlers) Info(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, rootResponse{
		Message: RootMessage,
		Service: ServiceName,
		Pod:     h.podName(),
		Time:    clock.Format(h.Clock.Now()),
	})
}

func (h *RootHandlers) podName() string {
	getenv := h.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if pod := getenv(PodNameEnv); pod != "" {
		return pod
	}
	return UnknownPod
}
