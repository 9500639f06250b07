// Package logger carries the request scoped zerolog logger through
// context so services can log with the request id attached.
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey struct{}

var (
	fallbackOnce sync.Once
	fallback     zerolog.Logger
)

// New builds the console logger main and the request middleware start from.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewWithWriter builds a JSON logger. Tests pass a buffer to read the
// emitted fields back.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// WithContext attaches log to ctx. The middleware calls it once per request
// with the request id already set.
func WithContext(ctx context.Context, log zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger attached to ctx. Outside a request (seeding,
// migrations, tests without a logger) it falls back to a shared console
// logger.
func FromContext(ctx context.Context) zerolog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return log
	}
	fallbackOnce.Do(func() { fallback = New() })
	return fallback
}

// WithFields adds fields such as receipt_id or operation to every event.
func WithFields(log zerolog.Logger, fields map[string]interface{}) zerolog.Logger {
	ctx := log.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return ctx.Logger()
}
