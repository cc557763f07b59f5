package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), Config{Driver: DriverMemory})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, DriverMemory, store.Driver())
	assert.IsType(t, &MemoryStore{}, store)
}

func TestOpen_DetectsFromURL(t *testing.T) {
	store, err := Open(context.Background(), Config{Driver: "auto", URL: "memory:"})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, DriverMemory, store.Driver())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store driver")
}

func TestOpen_UnregisteredDriver(t *testing.T) {
	driversMu.Lock()
	saved, had := drivers[DriverMySQL]
	delete(drivers, DriverMySQL)
	driversMu.Unlock()
	t.Cleanup(func() {
		if had {
			RegisterDriver(DriverMySQL, saved)
		}
	})

	_, err := Open(context.Background(), Config{Driver: DriverMySQL, URL: "mysql://x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestOpen_LocalDriverSkipsBreaker(t *testing.T) {
	store, err := Open(context.Background(), Config{
		Driver:  DriverMemory,
		Breaker: BreakerConfig{Enabled: true},
	})
	require.NoError(t, err)

	_, wrapped := store.(*BreakerStore)
	assert.False(t, wrapped)
}

func TestDefaultSQLitePath(t *testing.T) {
	path := DefaultSQLitePath()
	assert.True(t, strings.HasSuffix(path, filepath.Join(".taskbook", "data.db")))
}

func TestDefaultLocalConfig(t *testing.T) {
	cfg := DefaultLocalConfig()
	assert.Equal(t, DriverSQLite, cfg.Driver)
	assert.Equal(t, DefaultSQLitePath(), cfg.SQLitePath)
}

func TestEnsureDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDirectory(filepath.Join(dir, "data.db")))
	assert.DirExists(t, dir)
}
