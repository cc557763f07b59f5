package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("connection refused")

type flakyStore struct {
	*MemoryStore
	fail  bool
	calls int
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.calls++
	if s.fail {
		return nil, errDown
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	s.calls++
	if s.fail {
		return errDown
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *flakyStore) Driver() Driver { return DriverRedis }

func TestBreakerStore_PassesThrough(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{MemoryStore: NewMemoryStore()}
	store := NewBreakerStore(inner, BreakerConfig{FailureThreshold: 2, Timeout: time.Minute}, nil)

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
	assert.Equal(t, DriverRedis, store.Driver())
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestBreakerStore_OpensAfterFailures(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{MemoryStore: NewMemoryStore(), fail: true}
	store := NewBreakerStore(inner, BreakerConfig{FailureThreshold: 2, Timeout: time.Minute}, nil)

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, errDown)
	err = store.Set(ctx, "k", nil)
	assert.ErrorIs(t, err, errDown)

	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, "open", store.State())
}

func TestBreakerStore_NotFoundDoesNotTrip(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{MemoryStore: NewMemoryStore()}
	store := NewBreakerStore(inner, BreakerConfig{FailureThreshold: 1, Timeout: time.Minute}, nil)

	for i := 0; i < 3; i++ {
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	}
	assert.Equal(t, "closed", store.State())
}
