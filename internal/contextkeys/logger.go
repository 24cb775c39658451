package contextkeys

import (
	"context"

	"github.com/numanharith/propertyhub-frontend/internal/core/port"
)

type loggerKeyType struct{}

// ContextWithLogger кладет логгер запроса (уже с trace_id) в контекст.
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKeyType{}, logger)
}

// LoggerFromContext никогда не возвращает nil: без логгера в контексте записи отбрасываются.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKeyType{}).(port.LoggerPort); ok && logger != nil {
		return logger
	}
	return discard{}
}

type discard struct{}

func (discard) Debug(string, port.Fields)                {}
func (discard) Info(string, port.Fields)                 {}
func (discard) Warn(string, port.Fields)                 {}
func (discard) Error(string, error, port.Fields)         {}
func (d discard) WithFields(port.Fields) port.LoggerPort { return d }
