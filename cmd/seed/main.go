package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"optical-storefront/internal/config"
	"optical-storefront/internal/db"
	"optical-storefront/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "seed").Logger()

	if cfg.DBConnString == "" {
		logger.Fatal().Msg("DB_DSN is required for seeding")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer pool.Close()

	count, err := seed.Apply(ctx, pool, cfg.ProductsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed products")
	}
	logger.Info().Int("count", count).Str("file", cfg.ProductsFile).Msg("products seeded")
}
