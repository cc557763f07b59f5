package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/taskbook/adapter/cli"
	cliSettings "github.com/felixgeelhaar/taskbook/adapter/cli/settings"
	"github.com/felixgeelhaar/taskbook/adapter/cli/task"
	"github.com/felixgeelhaar/taskbook/internal/app"
	"github.com/felixgeelhaar/taskbook/pkg/config"
	"github.com/felixgeelhaar/taskbook/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development", StoreDriver: "auto"}
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Version: cli.Version,
	})
	slog.SetDefault(logger)
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}

	cli.SetApp(cli.NewApp(container.Registry, container.Store, container.Exporter))
	cli.AddCommand(task.Cmd)
	cli.AddCommand(cliSettings.Cmd)

	err = cli.Run(ctx)
	container.Close()
	if err != nil {
		os.Exit(1)
	}
}
