// Package trace wraps operation boundaries with structured log/slog
// events so graph mutation, parsing, and resolution emit consistent,
// field-tagged entry/exit lines without every call site repeating the
// same boilerplate.
package trace

import (
	"context"
	"log/slog"
	"time"
)

// Op represents one in-flight traced operation.
type Op struct {
	logger *slog.Logger
	name   string
	start  time.Time
}

// Begin logs operation entry and returns an Op; call End when the
// operation completes, passing the error it returned (nil on success).
func Begin(ctx context.Context, logger *slog.Logger, name string, attrs ...slog.Attr) Op {
	if logger == nil {
		logger = slog.Default()
	}
	args := make([]any, 0, len(attrs)*2)
	for _, a := range attrs {
		args = append(args, a.Key, a.Value.Any())
	}
	logger.DebugContext(ctx, name+".start", args...)
	return Op{logger: logger, name: name, start: time.Now()}
}

// End logs operation completion, including elapsed duration and the
// error (if any).
func (o Op) End(err error) {
	dur := time.Since(o.start)
	if err != nil {
		o.logger.Error(o.name+".error", "duration", dur, "error", err)
		return
	}
	o.logger.Debug(o.name+".done", "duration", dur)
}

// Warn logs a warning tagged with the given fields.
func Warn(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil {
		logger = slog.Default()
	}
	args := make([]any, 0, len(attrs)*2)
	for _, a := range attrs {
		args = append(args, a.Key, a.Value.Any())
	}
	logger.WarnContext(ctx, msg, args...)
}

// Debug logs a debug-level event tagged with the given fields.
func Debug(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil {
		logger = slog.Default()
	}
	args := make([]any, 0, len(attrs)*2)
	for _, a := range attrs {
		args = append(args, a.Key, a.Value.Any())
	}
	logger.DebugContext(ctx, msg, args...)
}
