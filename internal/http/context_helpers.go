package httpx

import "context"

// requestIDKey is an unexported context key type to avoid collisions across packages.
type requestIDKey struct{}

// SetRequestIDInContext returns a child context that carries the given request ID.
// If id is empty, the original ctx is returned unchanged.
func SetRequestIDInContext(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestIDFromContext returns the request ID stored by the RequestID middleware, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
