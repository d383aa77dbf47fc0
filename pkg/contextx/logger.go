package contextx

import (
	"context"
	"log/slog"
)

type contextKeyLogger struct{}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger{}, logger)
}

func LoggerFromContext(ctx context.Context) (*slog.Logger, error) {
	return valueFromContext[*slog.Logger](ctx, contextKeyLogger{}, "logger")
}

// LoggerFromContextOrDefault never returns nil: a context without a logger
// falls back to slog.Default.
func LoggerFromContextOrDefault(ctx context.Context) *slog.Logger {
	logger, err := LoggerFromContext(ctx)
	if err != nil || logger == nil {
		return slog.Default()
	}

	return logger
}
