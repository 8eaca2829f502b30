package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/BerylCAtieno/goflux-content-engine/internal/a2a"
	"github.com/BerylCAtieno/goflux-content-engine/internal/api"
	"github.com/BerylCAtieno/goflux-content-engine/internal/config"
	"github.com/BerylCAtieno/goflux-content-engine/internal/configstore"
	"github.com/BerylCAtieno/goflux-content-engine/internal/engine"
	"github.com/BerylCAtieno/goflux-content-engine/internal/generator"
	"github.com/BerylCAtieno/goflux-content-engine/internal/metrics"
	"github.com/gin-gonic/gin"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	ctx := context.Background()

	backend, err := openBackend(cfg.Storage)
	if err != nil {
		return err
	}

	m := metrics.New()
	store := configstore.New(backend,
		configstore.WithLogger(logger),
		configstore.WithMutationHook(m.ConfigMutated))
	defer store.Close()

	if _, _, err := store.Load(ctx); err != nil {
		return err
	}

	model, err := generator.NewModel(ctx, cfg.Provider)
	if err != nil {
		return err
	}
	client := generator.NewClient(model, logger)
	defer client.Close()

	eng := engine.New(client, store,
		engine.WithLogger(logger),
		engine.WithMetrics(m),
		engine.WithLanguage(cfg.Content.Language),
		engine.WithTimeout(cfg.Provider.Timeout))

	router := gin.Default()
	api.NewHandler(eng, m, logger).Register(router)
	a2a.NewA2AHandler(eng, logger, version).Register(router)

	port := cfg.Server.Port
	logger.Info("goFlux content engine starting",
		slog.String("port", port),
		slog.String("provider", client.Provider()),
		slog.String("storage", cfg.Storage.Driver))
	logger.Info("Agent card available", slog.String("url", "http://localhost:"+port+a2a.CardPath))
	logger.Info("A2A endpoint available", slog.String("url", "http://localhost:"+port+a2a.ContentPath))

	if err := router.Run(":" + port); err != nil {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

func openBackend(cfg config.StorageConfig) (configstore.Backend, error) {
	switch cfg.Driver {
	case config.StorageFile:
		return configstore.NewFileBackend(cfg.Path)
	case config.StorageSQLite:
		return configstore.NewSQLiteBackend(cfg.Path)
	default:
		return configstore.NewMemoryBackend(), nil
	}
}
