package task

import (
	"encoding/json"
	"time"

	"github.com/felixgeelhaar/taskbook/internal/shared/domain"
)

const (
	AggregateType = "Task"

	RoutingKeyCreated   = "taskbook.task.created"
	RoutingKeyUpdated   = "taskbook.task.updated"
	RoutingKeyCompleted = "taskbook.task.completed"
	RoutingKeyReopened  = "taskbook.task.reopened"
	RoutingKeyDeleted   = "taskbook.task.deleted"
)

// Event is emitted after a task mutation. It carries the task as it looked
// once the mutation was applied (or just before removal, for deletions).
type Event struct {
	domain.BaseEvent
	Task   Task
	Fields []string // Names of fields that were updated
}

// NewEvent creates an Event for t under the given routing key.
func NewEvent(routingKey string, t Task, fields []string, occurredAt time.Time) Event {
	return Event{
		BaseEvent: domain.NewBaseEvent(t.ID, AggregateType, routingKey, occurredAt),
		Task:      t,
		Fields:    fields,
	}
}

// RoutingKeyForPatch picks the routing key that best describes a patch.
func RoutingKeyForPatch(p Patch) string {
	if p.Status != nil {
		switch *p.Status {
		case StatusCompleted:
			return RoutingKeyCompleted
		case StatusPending:
			return RoutingKeyReopened
		}
	}
	return RoutingKeyUpdated
}

// MarshalJSON flattens the event header next to the task payload.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		domain.Envelope
		Task   Task     `json:"task"`
		Fields []string `json:"fields,omitempty"`
	}{
		Envelope: domain.EnvelopeOf(e),
		Task:     e.Task,
		Fields:   e.Fields,
	})
}
