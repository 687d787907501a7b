package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tronicboy1/sql-paginatorr/internal/config"
	"github.com/tronicboy1/sql-paginatorr/internal/logger"
	"github.com/tronicboy1/sql-paginatorr/internal/server"
)

func main() {
	path := os.Getenv("APP_CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	// Load application config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	if cfg.Logger.ServiceName == "" {
		cfg.Logger.ServiceName = cfg.App.Name
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Info().
		Int("port", cfg.Server.Port).
		Uint("max_pairs", cfg.Paging.MaxPairs).
		Uint("default_page_size", cfg.Paging.DefaultPageSize).
		Msg("🚀 Service starting")

	if err := server.New(cfg, appLogger).Run(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("server stopped with error")
	}
}
