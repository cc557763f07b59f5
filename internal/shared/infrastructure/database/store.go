package database

import "context"

// KeyValueStore is the durable medium: whole values addressed by key.
// A Set replaces any previous value atomically.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Driver returns the backend type.
	Driver() Driver

	// Close releases the underlying connection.
	Close() error
}
