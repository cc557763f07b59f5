// Package migrations holds the embedded schema for SQL-backed key-value stores.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed sqlite/*.sql postgres/*.sql mysql/*.sql
var migrationFS embed.FS

// ExecFunc executes a single schema statement.
type ExecFunc func(ctx context.Context, stmt string) error

// Run executes all migrations for dialect ("sqlite", "postgres" or "mysql") in order.
// Each file holds one idempotent statement.
func Run(ctx context.Context, dialect string, exec ExecFunc) error {
	files, err := Files(dialect)
	if err != nil {
		return err
	}

	for _, file := range files {
		migration, err := migrationFS.ReadFile(dialect + "/" + file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		if err := exec(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}

	return nil
}

// Files lists the .up.sql files for dialect in execution order.
func Files(dialect string) ([]string, error) {
	entries, err := migrationFS.ReadDir(dialect)
	if err != nil {
		return nil, fmt.Errorf("no migrations for dialect %q: %w", dialect, err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)
	return upFiles, nil
}
