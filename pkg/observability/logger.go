// Package observability provides structured logging and correlation ids
// for taskbook.
package observability

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogConfig configures the logger.
type LogConfig struct {
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string
	// Format is "json" or "text". Anything else means text.
	Format string
	// Output defaults to os.Stderr so command output on stdout stays clean.
	Output io.Writer
	// Version is attached to every entry when set.
	Version string
}

// NewLogger returns a logger that stamps each entry with the correlation id
// and operation carried by the context it is given.
func NewLogger(cfg LogConfig) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(out, opts)
	} else {
		base = slog.NewTextHandler(out, opts)
	}
	if cfg.Version != "" {
		base = base.WithAttrs([]slog.Attr{slog.String("version", cfg.Version)})
	}
	return slog.New(commandHandler{next: base})
}

// LoggerFromEnv builds a logger from LOG_LEVEL and LOG_FORMAT, the same
// variables config.Load reads.
func LoggerFromEnv() *slog.Logger {
	return NewLogger(LogConfig{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	})
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// commandHandler copies the command-scoped values of the context onto
// each record.
type commandHandler struct {
	next slog.Handler
}

func (h commandHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h commandHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := CorrelationIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String(CorrelationIDKey, id))
	}
	if op := OperationFromContext(ctx); op != "" {
		r.AddAttrs(slog.String(OperationKey, op))
	}
	return h.next.Handle(ctx, r)
}

func (h commandHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return commandHandler{next: h.next.WithAttrs(attrs)}
}

func (h commandHandler) WithGroup(name string) slog.Handler {
	return commandHandler{next: h.next.WithGroup(name)}
}

// LogOperation returns a logger tagged with operation and the given
// key/value pairs.
func LogOperation(logger *slog.Logger, operation string, attrs ...any) *slog.Logger {
	return logger.With(append([]any{OperationKey, operation}, attrs...)...)
}

// LogDuration logs at debug level how long operation has run since start.
// The operation key is left to the handler when the context already names
// the same operation.
func LogDuration(ctx context.Context, logger *slog.Logger, operation string, start time.Time) {
	args := []any{DurationKey, time.Since(start).Milliseconds()}
	if OperationFromContext(ctx) != operation {
		args = append(args, OperationKey, operation)
	}
	logger.DebugContext(ctx, "finished", args...)
}
