package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/taskbook/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEvent(t *testing.T) {
	occurred := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))

	event := domain.NewBaseEvent("task-1", "Task", "taskbook.task.created", occurred)

	assert.NotEqual(t, uuid.Nil, event.EventID())
	assert.Equal(t, "task-1", event.AggregateID())
	assert.Equal(t, "Task", event.AggregateType())
	assert.Equal(t, "taskbook.task.created", event.RoutingKey())
	assert.Equal(t, time.UTC, event.OccurredAt().Location())
	assert.True(t, occurred.Equal(event.OccurredAt()))
}

func TestNewBaseEvent_UniqueIDs(t *testing.T) {
	a := domain.NewBaseEvent("task-1", "Task", "k", time.Now())
	b := domain.NewBaseEvent("task-1", "Task", "k", time.Now())
	assert.NotEqual(t, a.EventID(), b.EventID())
}

func TestBaseEvent_WithMetadata(t *testing.T) {
	event := domain.NewBaseEvent("task-1", "Task", "taskbook.task.created", time.Now())
	event.SetMetadata(domain.EventMetadata{CorrelationID: "corr-123"})

	assert.Equal(t, "corr-123", event.Metadata().CorrelationID)
}

func TestEnvelopeOf(t *testing.T) {
	occurred := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	event := domain.NewBaseEvent("task-1", "Task", "taskbook.task.deleted", occurred)
	event.SetMetadata(domain.EventMetadata{CorrelationID: "corr-1"})

	env := domain.EnvelopeOf(event)

	assert.Equal(t, event.EventID().String(), env.EventID)
	assert.Equal(t, "task-1", env.AggregateID)
	assert.Equal(t, "Task", env.AggregateType)
	assert.Equal(t, "taskbook.task.deleted", env.RoutingKey)
	assert.Equal(t, occurred, env.OccurredAt)
	assert.Equal(t, "corr-1", env.CorrelationID)
}
