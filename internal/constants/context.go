package constants

import "context"

type (
	// LoggerKey is the context key under which a logger handle is stored.
	LoggerKey struct{}
	// RequestKey is the context key for the request identifier.
	RequestKey struct{}
)

// ContextWithRequestID stores id in ctx. Empty ids leave ctx untouched.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}

	return context.WithValue(ctx, RequestKey{}, id)
}

// RequestIDFromContext returns the request identifier stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(RequestKey{}).(string)

	return id
}
