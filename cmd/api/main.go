package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"econhub/app"
	"econhub/internal"
	"econhub/internal/config"
	"econhub/ui"

	"github.com/joho/godotenv"
)

// Runs only the JSON API server.
func main() {
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewLogger(appConfig.Logging.Level)
	defer func() { _ = logger.Sync() }()

	server := ui.NewServer(
		appConfig.Server.GinMode,
		app.NewWorldviewService(logger),
		app.NewForecastService(appConfig.Forecast, logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, appConfig.Server.Addr(), appConfig.Server.ShutdownTimeout); err != nil {
		logger.Error("API server failed: %v", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
