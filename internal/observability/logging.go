// Package observability builds the logger and tracer handed to the standings
// module.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// LoggerOptions controls logger construction.
type LoggerOptions struct {
	Level       string // debug|info|warn|error
	Format      string // text|json
	Environment string
	ServiceName string
}

// ParseLevel maps a level name onto a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger creates a structured logger writing to w.
func NewLogger(w io.Writer, opts LoggerOptions) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(w, handlerOpts)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	logger := slog.New(handler)
	if opts.ServiceName != "" {
		logger = logger.With(slog.String("service", opts.ServiceName))
	}
	if opts.Environment != "" {
		logger = logger.With(slog.String("environment", opts.Environment))
	}
	return logger, nil
}

// NewTracer returns a tracer from the global provider. Without an installed
// provider the tracer is a no-op.
func NewTracer(name string) trace.Tracer {
	return otel.Tracer(name)
}
