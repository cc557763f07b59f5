package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/migrations"
)

// ErrURLRequired is returned when no connection string is configured.
var ErrURLRequired = errors.New("database URL is required for PostgreSQL")

func init() {
	database.RegisterDriver(database.DriverPostgres, func(ctx context.Context, cfg database.Config) (database.KeyValueStore, error) {
		return NewStore(ctx, cfg)
	})
}

// Store keeps key-value records in a PostgreSQL table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates the connection pool and applies the schema.
func NewStore(ctx context.Context, cfg database.Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, ErrURLRequired
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	err = migrations.Run(ctx, "postgres", func(ctx context.Context, stmt string) error {
		_, err := pool.Exec(ctx, stmt)
		return err
	})
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{pool: pool}, nil
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_records WHERE record_key = $1`, key).Scan(&value)
	if database.IsNoRows(err) {
		return nil, database.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get %q: %w", key, err)
	}
	return value, nil
}

// Set upserts the value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_records (record_key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (record_key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`
	if value == nil {
		value = []byte{}
	}
	if _, err := s.pool.Exec(ctx, q, key, value); err != nil {
		return fmt.Errorf("postgres set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_records WHERE record_key = $1`, key); err != nil {
		return fmt.Errorf("postgres delete %q: %w", key, err)
	}
	return nil
}

// Driver returns the driver type.
func (s *Store) Driver() database.Driver {
	return database.DriverPostgres
}

// Close closes the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
