package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
)

// ActivityLogger records every task event as a structured log line.
type ActivityLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewActivityLogger creates a consumer that logs at level.
func NewActivityLogger(logger *slog.Logger, level slog.Level) *ActivityLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLogger{logger: logger, level: level}
}

// EventTypes subscribes to everything.
func (a *ActivityLogger) EventTypes() []string {
	return []string{AllEvents}
}

// Handle writes one log record per event.
func (a *ActivityLogger) Handle(ctx context.Context, event *ConsumedEvent) error {
	attrs := []any{
		"event", event.RoutingKey,
		"task_id", event.AggregateID,
	}
	if len(event.Fields) > 0 {
		attrs = append(attrs, "fields", event.Fields)
	}

	var snapshot struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	if len(event.Task) > 0 && json.Unmarshal(event.Task, &snapshot) == nil {
		attrs = append(attrs, "title", snapshot.Title, "status", snapshot.Status)
	}

	a.logger.Log(ctx, a.level, "task activity", attrs...)
	return nil
}
