package database

import "strings"

// Driver represents a key-value backend type.
type Driver string

const (
	// DriverSQLite stores records in a local SQLite file.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres stores records in a PostgreSQL table.
	DriverPostgres Driver = "postgres"
	// DriverMySQL stores records in a MySQL table.
	DriverMySQL Driver = "mysql"
	// DriverRedis stores records as Redis string keys.
	DriverRedis Driver = "redis"
	// DriverMemory keeps records in process memory only.
	DriverMemory Driver = "memory"
)

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// DetectDriver parses a connection string and returns the driver type.
// Returns DriverSQLite for empty URLs to enable zero-config local mode.
func DetectDriver(url string) Driver {
	if url == "" {
		return DriverSQLite
	}

	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(url, "mysql://"):
		return DriverMySQL
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		return DriverRedis
	case strings.HasPrefix(url, "memory:"):
		return DriverMemory
	}

	// sqlite://, file: and bare paths
	return DriverSQLite
}

// IsValid returns true if the driver is a known type.
func (d Driver) IsValid() bool {
	switch d {
	case DriverSQLite, DriverPostgres, DriverMySQL, DriverRedis, DriverMemory:
		return true
	default:
		return false
	}
}

// IsRemote reports whether the backend lives outside this process and host file system.
func (d Driver) IsRemote() bool {
	switch d {
	case DriverPostgres, DriverMySQL, DriverRedis:
		return true
	default:
		return false
	}
}
