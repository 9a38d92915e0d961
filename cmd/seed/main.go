// Command seed writes the sample property catalogue into the configured store.
// Properties whose title already exists are skipped, so it is safe to rerun.
package main

import (
	"context"
	"time"

	"letify_backend/internal/config"
	"letify_backend/internal/kvstore"
	"letify_backend/internal/logger"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	logger.Init(cfg.Server.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := kvstore.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open store", "type", cfg.Store.Type, "error", err)
	}
	defer store.Close()

	repos := repositories.NewContainer(store)
	created, err := services.NewPropertyService(repos.Properties).Seed(ctx, sampleProperties)
	if err != nil {
		logger.Fatal("Seeding failed", "created", created, "error", err)
	}

	logger.Info("Seed complete",
		"store", cfg.Store.Type,
		"created", created,
		"skipped", len(sampleProperties)-created,
	)
}
