package contextutil

import "context"

// Unexported key type so request-scoped values cannot collide with other
// packages' context keys.
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID injects a request id into the context.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID retrieves the request id from the context, or "" when unset.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
