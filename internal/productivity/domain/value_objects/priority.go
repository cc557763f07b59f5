package value_objects

import (
	"errors"
	"strings"
)

// Priority represents task urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when a task is created without one.
const DefaultPriority = PriorityMedium

var (
	ErrInvalidPriority = errors.New("invalid priority value")
)

var priorityWeights = map[Priority]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

// ParsePriority creates a Priority from a string.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid returns true if the priority is a valid value.
func (p Priority) IsValid() bool {
	_, ok := priorityWeights[p]
	return ok
}

// Weight returns a numeric weight for sorting (higher = more important).
// Unknown priorities weigh zero.
func (p Priority) Weight() int {
	return priorityWeights[p]
}
