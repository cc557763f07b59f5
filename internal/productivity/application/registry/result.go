package registry

import "github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"

// Result reports the outcome of a mutation. Task is nil when the id did not
// match; Persisted is false when the store rejected the write, in which case
// the change still lives in memory.
type Result struct {
	Task      *task.Task
	Persisted bool
}

// Found reports whether the operation matched a task.
func (r Result) Found() bool {
	return r.Task != nil
}

func resultOf(t task.Task, persisted bool) Result {
	c := t.Clone()
	return Result{Task: &c, Persisted: persisted}
}
