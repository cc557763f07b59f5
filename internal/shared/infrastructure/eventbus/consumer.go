package eventbus

import (
	"context"
	"encoding/json"
	"time"
)

// AllEvents subscribes a consumer to every routing key.
const AllEvents = "*"

// EventConsumer handles specific event types.
type EventConsumer interface {
	// EventTypes returns the routing keys this consumer handles,
	// e.g. ["taskbook.task.created"], or AllEvents.
	EventTypes() []string

	// Handle processes the event.
	Handle(ctx context.Context, event *ConsumedEvent) error
}

// ConsumedEvent is the decoded form of a published task event.
type ConsumedEvent struct {
	EventID       string          `json:"event_id"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	RoutingKey    string          `json:"routing_key"`
	OccurredAt    time.Time       `json:"occurred_at"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Task          json.RawMessage `json:"task,omitempty"`
	Fields        []string        `json:"fields,omitempty"`
}
