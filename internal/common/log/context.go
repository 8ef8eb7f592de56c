package log

import "context"

type requestIDKey struct{}

// InjectRequestID stores the request id so every log line of the request
// carries it.
func InjectRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

func withCtxFields(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	if rid := RequestIDFromContext(ctx); rid != "" {
		fields = append(fields, String("requestId", rid))
	}
	return fields
}
