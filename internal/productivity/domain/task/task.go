package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/value_objects"
)

var (
	// ErrValidation is wrapped by every input validation failure.
	ErrValidation    = errors.New("validation failed")
	ErrEmptyTitle    = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrInvalidStatus = fmt.Errorf("%w: invalid status value", ErrValidation)

	// Record errors, reported when checking tasks that did not come from New.
	ErrMissingID          = fmt.Errorf("%w: task id cannot be empty", ErrValidation)
	ErrDuplicateID        = fmt.Errorf("%w: duplicate task id", ErrValidation)
	ErrCompletionMismatch = fmt.Errorf("%w: completedAt must be set exactly when status is completed", ErrValidation)
	ErrTimestampOrder     = fmt.Errorf("%w: updatedAt is earlier than createdAt", ErrValidation)
)

// Status represents the task lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// ParseStatus creates a Status from a string.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

// IsValid returns true for the two defined lifecycle states.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task is a single trackable to-do item.
//
// Tasks are plain values: the registry replaces the stored record on every
// mutation instead of editing it in place. DueDate is kept verbatim as the
// caller supplied it. Absent DueDate and CompletedAt serialize as null.
type Task struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    value_objects.Priority `json:"priority"`
	DueDate     *string                `json:"dueDate"`
	Status      Status                 `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	CompletedAt *time.Time             `json:"completedAt"`
}

// Input carries the fields accepted when creating a task.
type Input struct {
	Title       string
	Description string
	Priority    string  // empty means medium
	DueDate     *string // nil or empty means no due date
}

// New builds a pending task from input. It trims text fields, applies the
// priority default and stamps both timestamps with now.
func New(id string, in Input, now time.Time) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	priority := value_objects.DefaultPriority
	if strings.TrimSpace(in.Priority) != "" {
		p, err := value_objects.ParsePriority(in.Priority)
		if err != nil {
			return Task{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		priority = p
	}

	now = now.UTC()
	return Task{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Priority:    priority,
		DueDate:     normalizeDueDate(in.DueDate),
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsCompleted reports whether the task is in the completed state.
func (t Task) IsCompleted() bool { return t.Status == StatusCompleted }

// Validate checks a whole record against the task invariants.
func (t Task) Validate() error {
	if t.ID == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %w", ErrValidation, value_objects.ErrInvalidPriority)
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	if t.IsCompleted() != (t.CompletedAt != nil) {
		return ErrCompletionMismatch
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return ErrTimestampOrder
	}
	return nil
}

// ValidateAll checks every task and that no id repeats.
func ValidateAll(tasks []Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %d (%q): %w", i, t.ID, err)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %d: %w: %s", i, ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	c := t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	return c
}

func normalizeDueDate(d *string) *string {
	if d == nil || *d == "" {
		return nil
	}
	v := *d
	return &v
}
