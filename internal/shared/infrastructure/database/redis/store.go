package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database"
)

// KeyPrefix namespaces every record written by taskbook.
const KeyPrefix = "taskbook:"

func init() {
	database.RegisterDriver(database.DriverRedis, func(ctx context.Context, cfg database.Config) (database.KeyValueStore, error) {
		return NewStore(ctx, cfg)
	})
}

// Store keeps records as plain Redis string keys without expiry.
type Store struct {
	client *redis.Client
}

// NewStore parses the redis:// URL and verifies the server answers.
func NewStore(ctx context.Context, cfg database.Config) (*Store, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.MaxConns > 0 {
		opt.PoolSize = cfg.MaxConns
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewStoreWithClient(client), nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

func namespaceKey(key string) string {
	return KeyPrefix + key
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, namespaceKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, database.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

// Set stores value under key with no expiration.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, namespaceKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, namespaceKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}
	return nil
}

// Driver returns the driver type.
func (s *Store) Driver() database.Driver {
	return database.DriverRedis
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}
