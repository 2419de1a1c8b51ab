package httpx

import (
	"io"
	"net/http"
)

// readyHandler answers readiness probes. It has no dependencies to check, so it
// succeeds for as long as the process is serving.
func readyHandler(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, r, readyResponse)
}

// healthHandler answers liveness probes.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, r, healthResponse)
}

func writeProbe(w http.ResponseWriter, r *http.Request, body string) {
	w.Header().Set("Content-Type", contentTypePlain)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, body); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
