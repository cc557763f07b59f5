package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Store
	StoreURL      string
	StoreDriver   string
	SQLitePath    string
	StoreMaxConns int

	// Circuit breaker for remote stores
	BreakerEnabled  bool
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	// RabbitMQ
	RabbitMQURL string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		StoreURL:      getEnv("TASKBOOK_STORE_URL", ""),
		StoreDriver:   getEnv("TASKBOOK_STORE_DRIVER", "auto"),
		SQLitePath:    getEnv("TASKBOOK_SQLITE_PATH", defaultSQLitePath()),
		StoreMaxConns: getIntEnv("TASKBOOK_STORE_MAX_CONNS", 0),

		BreakerEnabled:  getBoolEnv("TASKBOOK_BREAKER_ENABLED", true),
		BreakerFailures: uint32(getIntEnv("TASKBOOK_BREAKER_FAILURES", 5)),
		BreakerTimeout:  getDurationEnv("TASKBOOK_BREAKER_TIMEOUT", 30*time.Second),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
	}
	if os.Getenv("LOG_FORMAT") == "" && cfg.IsProduction() {
		cfg.LogFormat = "json"
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// IsLocal reports whether data stays in the local SQLite file.
func (c *Config) IsLocal() bool {
	return c.StoreURL == "" && (c.StoreDriver == "" || c.StoreDriver == "auto" || c.StoreDriver == "sqlite")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil && i >= 0 {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".taskbook", "data.db")
	}
	return filepath.Join(home, ".taskbook", "data.db")
}
