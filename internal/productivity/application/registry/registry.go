// Package registry holds the in-memory task collection, applies mutations
// and keeps the durable copy in sync after each one.
package registry

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
	"github.com/felixgeelhaar/taskbook/internal/shared/domain"
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/taskbook/pkg/observability"
)

const maxIDAttempts = 16

// ErrIDCollision is returned when the id generator keeps producing ids that
// are already taken.
var ErrIDCollision = errors.New("could not generate a unique task id")

// TaskStore is the durable side of the registry.
type TaskStore interface {
	LoadTasks(ctx context.Context) []task.Task
	SaveTasks(ctx context.Context, tasks []task.Task) bool
}

// Registry is the authoritative in-memory task collection, kept newest first.
type Registry struct {
	mu         sync.Mutex
	store      TaskStore
	tasks      []task.Task
	filter     task.Filter
	searchTerm string

	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	publisher eventbus.Publisher
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// WithPublisher sets where lifecycle events go.
func WithPublisher(p eventbus.Publisher) Option {
	return func(r *Registry) {
		if p != nil {
			r.publisher = p
		}
	}
}

// New creates a registry and loads the saved collection from store.
func New(ctx context.Context, store TaskStore, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		filter: task.FilterAll,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.publisher == nil {
		r.publisher = eventbus.NewNoopPublisher(r.logger)
	}

	r.tasks = store.LoadTasks(ctx)
	r.logger.Debug("task registry loaded", "count", len(r.tasks))
	return r
}

// CreateTask adds a new pending task at the front of the collection.
func (r *Registry) CreateTask(ctx context.Context, in task.Input) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.nextID()
	if err != nil {
		return Result{}, err
	}

	t, err := task.New(id, in, r.now())
	if err != nil {
		return Result{}, err
	}

	r.tasks = append([]task.Task{t}, r.tasks...)
	persisted := r.persist(ctx)

	r.publish(ctx, task.NewEvent(task.RoutingKeyCreated, t, nil, t.CreatedAt))
	return resultOf(t, persisted), nil
}

// GetTaskByID returns a copy of the task with id.
func (r *Registry) GetTaskByID(id string) (task.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return task.Task{}, false
	}
	return r.tasks[i].Clone(), true
}

// UpdateTask merges the patch into the task with id. An unknown id yields
// an empty Result and no error. Invalid patches change nothing.
func (r *Registry) UpdateTask(ctx context.Context, id string, p task.Patch) (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Result{}, nil
	}

	updated, err := p.Apply(r.tasks[i], r.now())
	if err != nil {
		return Result{}, err
	}

	r.tasks[i] = updated
	persisted := r.persist(ctx)

	r.publish(ctx, task.NewEvent(task.RoutingKeyForPatch(p), updated, p.Fields(), updated.UpdatedAt))
	return resultOf(updated, persisted), nil
}

// MarkAsCompleted sets the task's status to completed.
func (r *Registry) MarkAsCompleted(ctx context.Context, id string) (Result, error) {
	return r.UpdateTask(ctx, id, task.StatusPatch(task.StatusCompleted))
}

// MarkAsPending sets the task's status back to pending.
func (r *Registry) MarkAsPending(ctx context.Context, id string) (Result, error) {
	return r.UpdateTask(ctx, id, task.StatusPatch(task.StatusPending))
}

// DeleteTask removes the task with id. Result.Task holds the removed task.
func (r *Registry) DeleteTask(ctx context.Context, id string) Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Result{}
	}

	removed := r.tasks[i]
	r.tasks = append(r.tasks[:i:i], r.tasks[i+1:]...)
	persisted := r.persist(ctx)

	r.publish(ctx, task.NewEvent(task.RoutingKeyDeleted, removed, nil, r.now()))
	return resultOf(removed, persisted)
}

// SetFilter sets the status filter used by GetFilteredTasks.
func (r *Registry) SetFilter(f task.Filter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = f
}

// Filter returns the current status filter.
func (r *Registry) Filter() task.Filter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter
}

// SetSearchTerm sets the search term, trimmed.
func (r *Registry) SetSearchTerm(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.searchTerm = strings.TrimSpace(term)
}

// SearchTerm returns the current search term.
func (r *Registry) SearchTerm() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.searchTerm
}

// GetFilteredTasks returns the tasks passing both the status filter and the
// search term, newest first.
func (r *Registry) GetFilteredTasks() []task.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]task.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if r.filter.Allows(t) && task.MatchesSearch(t, r.searchTerm) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// GetStats counts the whole collection regardless of filter and search.
func (r *Registry) GetStats() task.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return task.ComputeStats(r.tasks)
}

// Len returns the number of tasks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// Reload replaces the in-memory collection with the stored one.
func (r *Registry) Reload(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = r.store.LoadTasks(ctx)
	r.logger.Debug("task registry reloaded", "count", len(r.tasks))
}

func (r *Registry) indexOf(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Registry) nextID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := r.newID()
		if id != "" && r.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", ErrIDCollision
}

func (r *Registry) persist(ctx context.Context) bool {
	if r.store.SaveTasks(ctx, r.tasks) {
		return true
	}
	r.logger.WarnContext(ctx, "task change kept in memory only", "count", len(r.tasks))
	return false
}

func (r *Registry) publish(ctx context.Context, e task.Event) {
	e.SetMetadata(domain.EventMetadata{CorrelationID: observability.CorrelationIDFromContext(ctx)})
	if err := eventbus.PublishEvent(ctx, r.publisher, e); err != nil {
		r.logger.WarnContext(ctx, "failed to publish task event",
			"routing_key", e.RoutingKey(),
			"task_id", e.AggregateID(),
			"error", err,
		)
	}
}
