package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/migrations"
)

func init() {
	database.RegisterDriver(database.DriverSQLite, func(ctx context.Context, cfg database.Config) (database.KeyValueStore, error) {
		return NewStore(ctx, cfg)
	})
}

// Store keeps key-value records in a single SQLite table.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the SQLite file and applies the schema.
func NewStore(ctx context.Context, cfg database.Config) (*Store, error) {
	path := resolvePath(cfg)

	if path != ":memory:" {
		if err := database.EnsureDirectory(path); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// - journal_mode=WAL: Write-Ahead Logging for better concurrency
	// - busy_timeout=5000: Wait 5s on lock instead of failing immediately
	// - synchronous=NORMAL: Good balance of safety and speed
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// SQLite doesn't support multiple writers, so limit connections.
	// This also keeps a :memory: database alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	err = migrations.Run(ctx, "sqlite", func(ctx context.Context, stmt string) error {
		_, err := db.ExecContext(ctx, stmt)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func resolvePath(cfg database.Config) string {
	if cfg.URL != "" {
		return strings.TrimPrefix(cfg.URL, "sqlite://")
	}
	if cfg.SQLitePath != "" {
		return cfg.SQLitePath
	}
	return database.DefaultSQLitePath()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_records WHERE record_key = ?`, key).Scan(&value)
	if database.IsNoRows(err) {
		return nil, database.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite get %q: %w", key, err)
	}
	return value, nil
}

// Set upserts the value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_records (record_key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (record_key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`
	if value == nil {
		value = []byte{}
	}
	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("sqlite set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_records WHERE record_key = ?`, key); err != nil {
		return fmt.Errorf("sqlite delete %q: %w", key, err)
	}
	return nil
}

// DB returns the underlying sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Driver returns the driver type.
func (s *Store) Driver() database.Driver {
	return database.DriverSQLite
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
