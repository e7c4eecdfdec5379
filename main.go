package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"econhub/adapters/memory"
	"econhub/adapters/search"
	"econhub/app"
	"econhub/domain/story"
	"econhub/internal"
	"econhub/internal/config"
	"econhub/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env file: %v", err)
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(appConfig.Logging.Level)
	defer func() { _ = logger.Sync() }()

	worldviews := app.NewWorldviewService(logger.With("component", "worldview"))
	forecasts := app.NewForecastService(appConfig.Forecast, logger.With("component", "forecast"))

	server := ui.NewServer(appConfig.Server.GinMode, worldviews, forecasts, logger.With("component", "api"))

	pages, err := ui.NewApp(ui.AppDeps{
		Summarizer:   search.NewCannedSummarizer(logger.With("component", "search")),
		Stories:      memory.NewStoryCatalog(story.DemoStories(time.Now())),
		Worldviews:   worldviews,
		PublicOrigin: appConfig.Server.PublicOrigin,
		Logger:       logger.With("component", "ui"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, appConfig.Server.Addr(), appConfig.Server.ShutdownTimeout)
	})
	g.Go(func() error {
		return pages.Run(gctx, appConfig.Server.UIAddr(), appConfig.Server.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error: %v", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("Shutdown complete")
}
