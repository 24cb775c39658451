package contextkeys

import "context"

type requestIDKey int

const (
	traceIDKey requestIDKey = iota
	clientIDKey
)

// ContextWithTraceID - trace_id запроса, уходит в X-Trace-ID исходящих вызовов и в заголовки событий.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	return stringValue(ctx, traceIDKey)
}

// ContextWithClientID - постоянный идентификатор браузера из cookie, есть и у анонимов.
func ContextWithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

func ClientIDFromContext(ctx context.Context) string {
	return stringValue(ctx, clientIDKey)
}

func stringValue(ctx context.Context, key requestIDKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
