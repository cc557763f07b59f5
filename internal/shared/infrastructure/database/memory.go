package database

import (
	"context"
	"sync"
)

func init() {
	RegisterDriver(DriverMemory, func(ctx context.Context, cfg Config) (KeyValueStore, error) {
		return NewMemoryStore(), nil
	})
}

// MemoryStore keeps records in process memory. Values are copied on the way
// in and out.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores value under key.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

// Driver returns the driver type.
func (s *MemoryStore) Driver() Driver {
	return DriverMemory
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
