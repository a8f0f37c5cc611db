package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"optical-storefront/internal/config"
	"optical-storefront/internal/db"
	"optical-storefront/internal/httpserver"
	orderrepo "optical-storefront/internal/repository/order"
	productrepo "optical-storefront/internal/repository/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "api").Logger()

	ctx := context.Background()

	deps := httpserver.Deps{
		Products: productrepo.NewFile(cfg.ProductsFile),
		Orders:   orderrepo.NewFile(cfg.OrdersFile, logger),
	}

	var dbpool *pgxpool.Pool
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect to db")
		}
		defer pool.Close()
		dbpool = pool

		// DB is primary; the JSON file stays as the fallback source.
		deps.Products = productrepo.NewFallback(
			productrepo.NewPostgres(pool, logger),
			productrepo.NewFile(cfg.ProductsFile),
			logger,
		)
		deps.Orders = orderrepo.NewPostgres(pool, logger)
	} else {
		logger.Warn().Msg("DB_DSN not set, serving from JSON files")
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps, cfg.PublicDir)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
