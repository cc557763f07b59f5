// Package persistence stores the task collection and user settings as two
// whole JSON records in a key-value medium.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/settings"
	"github.com/felixgeelhaar/taskbook/internal/productivity/domain/task"
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database"
)

const (
	TasksKey    = "taskbook_tasks"
	SettingsKey = "taskbook_settings"
)

// Store reads and writes the tasks and settings records. Failures never
// escape as errors: they are logged and reported through fallback values
// or a false return.
type Store struct {
	kv     database.KeyValueStore
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates a Store over kv.
func NewStore(kv database.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadTasks returns the saved collection, or an empty one when the record
// is absent or unreadable.
func (s *Store) LoadTasks(ctx context.Context) []task.Task {
	data, err := s.kv.Get(ctx, TasksKey)
	if err != nil {
		if !errors.Is(err, database.ErrKeyNotFound) {
			s.logger.Error("failed to load tasks", "error", err)
		}
		return []task.Task{}
	}
	if len(data) == 0 {
		return []task.Task{}
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Error("failed to parse tasks record", "error", err)
		return []task.Task{}
	}
	if tasks == nil {
		tasks = []task.Task{}
	}
	return tasks
}

// SaveTasks overwrites the tasks record with the full collection.
func (s *Store) SaveTasks(ctx context.Context, tasks []task.Task) bool {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		s.logger.Error("failed to encode tasks", "error", err)
		return false
	}
	if err := s.kv.Set(ctx, TasksKey, data); err != nil {
		s.logger.Error("failed to save tasks", "error", err, "count", len(tasks))
		return false
	}
	return true
}

// LoadSettings returns the stored settings. An absent record yields the
// defaults; a record that cannot be read or parsed yields empty settings.
func (s *Store) LoadSettings(ctx context.Context) settings.Settings {
	data, err := s.kv.Get(ctx, SettingsKey)
	if errors.Is(err, database.ErrKeyNotFound) {
		return settings.Defaults()
	}
	if err != nil {
		s.logger.Error("failed to load settings", "error", err)
		return settings.Settings{}
	}
	if len(data) == 0 {
		return settings.Defaults()
	}

	var out settings.Settings
	if err := json.Unmarshal(data, &out); err != nil {
		s.logger.Error("failed to parse settings record", "error", err)
		return settings.Settings{}
	}
	return out
}

// SaveSettings overwrites the settings record.
func (s *Store) SaveSettings(ctx context.Context, st settings.Settings) bool {
	data, err := json.Marshal(st)
	if err != nil {
		s.logger.Error("failed to encode settings", "error", err)
		return false
	}
	if err := s.kv.Set(ctx, SettingsKey, data); err != nil {
		s.logger.Error("failed to save settings", "error", err)
		return false
	}
	return true
}

// ExportAll snapshots both records. It does not modify the medium.
func (s *Store) ExportAll(ctx context.Context) Bundle {
	st := s.LoadSettings(ctx)
	return Bundle{
		Tasks:      s.LoadTasks(ctx),
		Settings:   &st,
		ExportDate: s.now().UTC().Format(ExportDateLayout),
	}
}

// ImportAll writes whichever of tasks and settings the bundle carries.
// Fields absent from the bundle leave their record untouched. An invalid
// bundle writes nothing. It reports false when the bundle was rejected or
// any attempted write failed.
func (s *Store) ImportAll(ctx context.Context, b Bundle) bool {
	if err := b.Validate(); err != nil {
		s.logger.Error("import rejected", "error", err)
		return false
	}

	ok := true
	if b.Tasks != nil {
		ok = s.SaveTasks(ctx, b.Tasks) && ok
	}
	if b.Settings != nil {
		ok = s.SaveSettings(ctx, *b.Settings) && ok
	}
	if !ok {
		s.logger.Warn("import completed with write failures")
	}
	return ok
}
