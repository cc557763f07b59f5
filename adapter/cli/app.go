package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/felixgeelhaar/taskbook/internal/productivity/application/registry"
	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/report"
)

// ErrNotInitialized is returned by commands run before SetApp.
var ErrNotInitialized = errors.New("application not initialized - store connection required")

// App holds the CLI application dependencies.
type App struct {
	Registry *registry.Registry
	Store    *persistence.Store
	Exporter *report.Exporter
}

// NewApp creates a new CLI application.
func NewApp(reg *registry.Registry, store *persistence.Store, exporter *report.Exporter) *App {
	return &App{
		Registry: reg,
		Store:    store,
		Exporter: exporter,
	}
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// RequireApp returns the application or ErrNotInitialized.
func RequireApp() (*App, error) {
	if app == nil || app.Registry == nil || app.Store == nil {
		return nil, ErrNotInitialized
	}
	return app, nil
}

// WarnUnsaved tells the user a change only reached memory.
func WarnUnsaved(w io.Writer, persisted bool) {
	if !persisted {
		fmt.Fprintln(w, "warning: saved in memory only, the store could not be written")
	}
}
