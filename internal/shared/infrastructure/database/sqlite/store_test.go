package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), database.Config{SQLitePath: path})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.db")

	store := newTestStore(t, path)

	assert.FileExists(t, path)
	assert.Equal(t, database.DriverSQLite, store.Driver())
}

func TestStore_SetStampsUpdatedAt(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, ":memory:")

	require.NoError(t, store.Set(ctx, "k", []byte(`{}`)))

	var count int
	var updatedAt string
	row := store.DB().QueryRowContext(ctx, `SELECT COUNT(*), MAX(updated_at) FROM kv_records WHERE record_key = ?`, "k")
	require.NoError(t, row.Scan(&count, &updatedAt))
	assert.Equal(t, 1, count)
	assert.NotEmpty(t, updatedAt)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t, ":memory:")

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, database.ErrKeyNotFound)
}

func TestStore_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, ":memory:")

	require.NoError(t, store.Set(ctx, "k", []byte(`[1]`)))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), got)

	require.NoError(t, store.Set(ctx, "k", []byte(`[1,2]`)))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2]`), got)
}

func TestStore_EmptyValue(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, ":memory:")

	require.NoError(t, store.Set(ctx, "k", nil))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, ":memory:")

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, database.ErrKeyNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.db")

	first, err := NewStore(ctx, database.Config{SQLitePath: path})
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "taskbook_tasks", []byte(`[]`)))
	require.NoError(t, first.Close())

	second := newTestStore(t, path)
	got, err := second.Get(ctx, "taskbook_tasks")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestOpen_RegisteredDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")

	store, err := database.Open(context.Background(), database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: path,
	})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &Store{}, store)
}

func TestOpen_URLPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "url.db")

	store, err := database.Open(context.Background(), database.Config{URL: "sqlite://" + path})
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, path)
}
