package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/taskbook/internal/productivity/application/registry"
	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/taskbook/internal/productivity/infrastructure/report"
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database"
	_ "github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database/mysql"    // Register MySQL driver
	_ "github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database/postgres" // Register PostgreSQL driver
	_ "github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database/redis"    // Register Redis driver
	_ "github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/database/sqlite"   // Register SQLite driver
	"github.com/felixgeelhaar/taskbook/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/taskbook/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Storage
	KV    database.KeyValueStore
	Store *persistence.Store

	// Publishers
	EventPublisher    eventbus.Publisher
	InProcessEventBus *eventbus.InProcessEventBus

	// Core
	Registry *registry.Registry
	Exporter *report.Exporter
}

// NewContainer opens the configured store and wires the registry.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	storeCfg := StoreConfig(cfg)
	kv, err := database.Open(ctx, storeCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	c.KV = kv
	logger.Debug("store opened", "driver", kv.Driver().String())

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	c.EventPublisher = publisher
	if bus, ok := publisher.(*eventbus.InProcessEventBus); ok {
		c.InProcessEventBus = bus
	}

	c.Store = persistence.NewStore(kv, persistence.WithLogger(logger))
	c.Registry = registry.New(ctx, c.Store,
		registry.WithLogger(logger),
		registry.WithPublisher(c.EventPublisher),
	)
	c.Exporter = report.NewExporter(c.Store)

	return c, nil
}

// newPublisher connects to RabbitMQ when configured. Without a broker, task
// events go to an in-process bus that records them in the activity log.
func newPublisher(cfg *config.Config, logger *slog.Logger) (eventbus.Publisher, error) {
	if cfg.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err == nil {
			return publisher, nil
		}
		if !cfg.IsDevelopment() {
			return nil, err
		}
		logger.Warn("RabbitMQ not available, using in-process event bus", "error", err)
	}

	bus := eventbus.NewInProcessEventBus(logger)
	bus.RegisterConsumer(eventbus.NewActivityLogger(logger, slog.LevelDebug))
	return bus, nil
}

// Close cleans up all resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}

	if c.KV != nil {
		if err := c.KV.Close(); err != nil {
			c.Logger.Warn("error closing store", "error", err)
		} else {
			c.Logger.Debug("store closed", "driver", c.KV.Driver().String())
		}
	}
}
