package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/value_objects"
)

// Patch names the fields an update may change. Nil pointers leave the
// corresponding field untouched.
type Patch struct {
	Title        *string
	Description  *string
	Priority     *string
	DueDate      *string
	ClearDueDate bool // takes precedence over DueDate
	Status       *Status
}

// Fields returns the names of the fields the patch touches, in JSON spelling.
func (p Patch) Fields() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.Description != nil {
		fields = append(fields, "description")
	}
	if p.Priority != nil {
		fields = append(fields, "priority")
	}
	if p.ClearDueDate || p.DueDate != nil {
		fields = append(fields, "dueDate")
	}
	if p.Status != nil {
		fields = append(fields, "status", "completedAt")
	}
	return fields
}

// Apply returns t with the patch merged in and UpdatedAt set to now.
//
// A status of completed stamps CompletedAt with now; pending clears it, even
// when the task was already pending. UpdatedAt never moves backwards.
func (p Patch) Apply(t Task, now time.Time) (Task, error) {
	next := t.Clone()
	now = now.UTC()
	if now.Before(t.UpdatedAt) {
		now = t.UpdatedAt
	}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return Task{}, ErrEmptyTitle
		}
		next.Title = title
	}

	if p.Description != nil {
		next.Description = strings.TrimSpace(*p.Description)
	}

	if p.Priority != nil {
		priority, err := value_objects.ParsePriority(*p.Priority)
		if err != nil {
			return Task{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		next.Priority = priority
	}

	if p.ClearDueDate {
		next.DueDate = nil
	} else if p.DueDate != nil {
		next.DueDate = normalizeDueDate(p.DueDate)
	}

	if p.Status != nil {
		switch *p.Status {
		case StatusCompleted:
			completedAt := now
			next.Status = StatusCompleted
			next.CompletedAt = &completedAt
		case StatusPending:
			next.Status = StatusPending
			next.CompletedAt = nil
		default:
			return Task{}, ErrInvalidStatus
		}
	}

	next.UpdatedAt = now
	return next, nil
}

// StatusPatch is a patch that only moves the task to status s.
func StatusPatch(s Status) Patch {
	return Patch{Status: &s}
}
