package value_objects_test

import (
	"testing"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/value_objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected value_objects.Priority
		wantErr  bool
	}{
		{"low", "low", value_objects.PriorityLow, false},
		{"medium", "medium", value_objects.PriorityMedium, false},
		{"high", "high", value_objects.PriorityHigh, false},
		{"case insensitive", "HIGH", value_objects.PriorityHigh, false},
		{"mixed case", "Medium", value_objects.PriorityMedium, false},
		{"surrounding space", " low ", value_objects.PriorityLow, false},
		{"urgent is not a level", "urgent", "", true},
		{"invalid", "invalid", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := value_objects.ParsePriority(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, value_objects.ErrInvalidPriority)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, value_objects.PriorityLow.IsValid())
	assert.True(t, value_objects.PriorityMedium.IsValid())
	assert.True(t, value_objects.PriorityHigh.IsValid())
	assert.False(t, value_objects.Priority("urgent").IsValid())
	assert.False(t, value_objects.Priority("").IsValid())
}

func TestPriority_Weight(t *testing.T) {
	assert.Greater(t, value_objects.PriorityHigh.Weight(), value_objects.PriorityMedium.Weight())
	assert.Greater(t, value_objects.PriorityMedium.Weight(), value_objects.PriorityLow.Weight())
	assert.Equal(t, 0, value_objects.Priority("bogus").Weight())
}

func TestDefaultPriority(t *testing.T) {
	assert.Equal(t, value_objects.PriorityMedium, value_objects.DefaultPriority)
	assert.Equal(t, "medium", value_objects.DefaultPriority.String())
}
