package httpx

// Fixed payload values reported by the root endpoint.
const (
	RootMessage = "Hello from container"
	ServiceName = "heelo-node"

	// PodNameEnv names the environment variable carrying the pod identifier.
	PodNameEnv = "POD_NAME"
	// UnknownPod is reported when PodNameEnv is unset or empty.
	UnknownPod = "unknown"
)

// Probe bodies.
const (
	readyResponse  = "ready"
	healthResponse = "ok"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

const (
	contentTypeJSON  = "application/json"
	contentTypePlain = "text/plain; charset=utf-8"
)
