package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds key-value store configuration.
type Config struct {
	// Driver specifies the backend to use.
	// If empty or "auto", it will be detected from the URL.
	Driver Driver

	// URL is the connection string for remote backends.
	// Example: "redis://localhost:6379/0"
	URL string

	// SQLitePath is the path to the SQLite database file.
	// Used when Driver is DriverSQLite and URL is empty.
	// Defaults to ~/.taskbook/data.db
	SQLitePath string

	// MaxConns is the maximum number of pooled connections (remote backends only).
	MaxConns int

	// Breaker guards remote backends with a circuit breaker.
	Breaker BreakerConfig
}

// BreakerConfig configures the circuit breaker around remote backends.
type BreakerConfig struct {
	Enabled          bool
	FailureThreshold uint32
	Timeout          time.Duration
}

// OpenFunc opens a store for one driver.
type OpenFunc func(ctx context.Context, cfg Config) (KeyValueStore, error)

var (
	driversMu sync.RWMutex
	drivers   = map[Driver]OpenFunc{}
)

// RegisterDriver registers the store factory for a driver.
// Backend packages call it from init; import them for side effects.
func RegisterDriver(d Driver, fn OpenFunc) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[d] = fn
}

// Open creates a key-value store based on configuration.
// This is the main factory function for creating stores.
func Open(ctx context.Context, cfg Config) (KeyValueStore, error) {
	driver := cfg.Driver
	if driver == "" || driver == "auto" {
		driver = DetectDriver(cfg.URL)
	}
	if !driver.IsValid() {
		return nil, fmt.Errorf("unsupported store driver: %s", driver)
	}

	driversMu.RLock()
	open, ok := drivers[driver]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("store driver %s is not registered", driver)
	}

	store, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Breaker.Enabled && driver.IsRemote() {
		store = NewBreakerStore(store, cfg.Breaker, nil)
	}

	return store, nil
}

// DefaultSQLitePath returns the default SQLite database path.
func DefaultSQLitePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".taskbook", "data.db")
}

// DefaultLocalConfig returns configuration for local SQLite mode.
func DefaultLocalConfig() Config {
	return Config{
		Driver:     DriverSQLite,
		SQLitePath: DefaultSQLitePath(),
	}
}

// EnsureDirectory creates the parent directory for a file path if it doesn't exist.
func EnsureDirectory(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
