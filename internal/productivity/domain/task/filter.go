package task

import (
	"errors"
	"strings"
)

var ErrInvalidFilter = errors.New("invalid filter value")

// Filter restricts a task view by status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// ParseFilter creates a Filter from a string. Empty input means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterCompleted:
		return f, nil
	default:
		return "", ErrInvalidFilter
	}
}

func (f Filter) String() string { return string(f) }

// Allows reports whether t passes the status filter. Any value other than
// pending or completed lets every task through.
func (f Filter) Allows(t Task) bool {
	switch f {
	case FilterPending:
		return t.Status == StatusPending
	case FilterCompleted:
		return t.Status == StatusCompleted
	default:
		return true
	}
}

// MatchesSearch reports whether term occurs in the title or description,
// ignoring case. An empty term matches everything.
func MatchesSearch(t Task, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// Stats holds aggregate counts over a task collection.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// ComputeStats counts tasks by status. Pending is total minus completed.
func ComputeStats(tasks []Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsCompleted() {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}
