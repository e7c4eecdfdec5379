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
)

// Runs only the pages app.
func main() {
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewLogger(appConfig.Logging.Level)
	defer func() { _ = logger.Sync() }()

	pages, err := ui.NewApp(ui.AppDeps{
		Summarizer:   search.NewCannedSummarizer(logger),
		Stories:      memory.NewStoryCatalog(story.DemoStories(time.Now())),
		Worldviews:   app.NewWorldviewService(logger),
		PublicOrigin: appConfig.Server.PublicOrigin,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("Failed to create UI app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pages.Run(ctx, appConfig.Server.UIAddr(), appConfig.Server.ShutdownTimeout); err != nil {
		logger.Error("UI server failed: %v", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
