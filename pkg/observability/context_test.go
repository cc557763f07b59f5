package observability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "given")
	assert.Equal(t, "given", CorrelationIDFromContext(ctx))

	generated := CorrelationIDFromContext(WithCorrelationID(context.Background(), ""))
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestFromContext_Missing(t *testing.T) {
	assert.Equal(t, "", CorrelationIDFromContext(context.Background()))
	assert.Equal(t, "", OperationFromContext(context.Background()))
}

func TestNewCommandContext(t *testing.T) {
	ctx := NewCommandContext(context.Background(), "task.add")

	assert.NotEmpty(t, CorrelationIDFromContext(ctx))
	assert.Equal(t, "task.add", OperationFromContext(ctx))

	other := NewCommandContext(context.Background(), "task.add")
	assert.NotEqual(t, CorrelationIDFromContext(ctx), CorrelationIDFromContext(other))
}
