package observability

import (
	"context"
	"log/slog"
	"time"
)

// Timer tracks the duration of an operation.
type Timer struct {
	operation string
	start     time.Time
	logger    *slog.Logger
	now       func() time.Time
}

// StartTimer creates a new timer for the given operation.
func StartTimer(operation string) *Timer {
	return &Timer{
		operation: operation,
		start:     time.Now(),
		now:       time.Now,
	}
}

// WithLogger adds a logger to the timer for automatic logging on stop.
func (t *Timer) WithLogger(logger *slog.Logger) *Timer {
	t.logger = logger
	return t
}

// Stop records the operation duration.
func (t *Timer) Stop(ctx context.Context) time.Duration {
	return t.StopWithError(ctx, nil)
}

// StopWithError records the duration, logging a failure when err is set.
func (t *Timer) StopWithError(ctx context.Context, err error) time.Duration {
	duration := t.now().Sub(t.start)

	if t.logger != nil {
		if err != nil {
			t.logger.ErrorContext(ctx, "operation failed",
				OperationKey, t.operation,
				DurationKey, duration.Milliseconds(),
				ErrorKey, err.Error(),
			)
		} else {
			t.logger.DebugContext(ctx, "operation completed",
				OperationKey, t.operation,
				DurationKey, duration.Milliseconds(),
			)
		}
	}

	return duration
}

// Elapsed returns the elapsed time without stopping the timer.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// TimeOperation times fn and logs its outcome.
func TimeOperation(ctx context.Context, logger *slog.Logger, operation string, fn func() error) error {
	timer := StartTimer(operation).WithLogger(logger)
	err := fn()
	timer.StopWithError(ctx, err)
	return err
}
