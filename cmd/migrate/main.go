package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"optical-storefront/internal/config"
	"optical-storefront/internal/db"
	"optical-storefront/internal/migrate"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "migrate").Logger()

	if cfg.DBConnString == "" {
		logger.Fatal().Msg("DB_DSN is required for migrations")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}
	logger.Info().Msg("migrations applied")
}
