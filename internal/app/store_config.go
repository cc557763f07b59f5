package app

import (
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/taskbook/pkg/config"
)

// StoreConfig maps application configuration onto the store factory's.
// Without a store URL the data stays in the local SQLite file.
func StoreConfig(cfg *config.Config) database.Config {
	out := database.Config{
		Driver:     database.Driver(cfg.StoreDriver),
		URL:        cfg.StoreURL,
		SQLitePath: cfg.SQLitePath,
		MaxConns:   cfg.StoreMaxConns,
		Breaker: database.BreakerConfig{
			Enabled:          cfg.BreakerEnabled,
			FailureThreshold: cfg.BreakerFailures,
			Timeout:          cfg.BreakerTimeout,
		},
	}

	if cfg.IsLocal() {
		local := database.DefaultLocalConfig()
		out.Driver = local.Driver
		if out.SQLitePath == "" {
			out.SQLitePath = local.SQLitePath
		}
	}
	return out
}
