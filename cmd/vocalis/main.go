package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/vocalis/adapter/cli"
	"github.com/felixgeelhaar/vocalis/adapter/cli/monetize"
	"github.com/felixgeelhaar/vocalis/adapter/cli/product"
	"github.com/felixgeelhaar/vocalis/adapter/cli/respond"
	"github.com/felixgeelhaar/vocalis/internal/app"
	"github.com/felixgeelhaar/vocalis/pkg/config"
	"github.com/felixgeelhaar/vocalis/pkg/observability"
)

func main() {
	// Setup logger
	logger := observability.LoggerFromEnv()

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

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	if cfg.LogLevel == "debug" {
		logger = observability.NewLogger(observability.LogConfig{
			Level:  observability.LogLevelDebug,
			Format: observability.LogFormatText,
		})
	}
	cli.SetLogger(logger)

	// Wire the container
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(cli.NewApp(
		container.CatalogService,
		container.PurchaseService,
		container.Assembler,
		cfg.DefaultLocale,
	))

	// Register commands
	cli.AddCommand(product.Cmd)
	cli.AddCommand(monetize.Cmd)
	cli.AddCommand(respond.Cmd)

	// Execute CLI
	cli.Execute()
}
