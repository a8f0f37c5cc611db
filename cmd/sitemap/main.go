package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"optical-storefront/internal/config"
	"optical-storefront/internal/seed"
	"optical-storefront/internal/sitemap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "sitemap").Logger()

	raw, err := os.ReadFile(cfg.ProductsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.ProductsFile).Msg("read products file")
	}
	products, err := seed.Parse(raw)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse products")
	}

	xml, err := sitemap.Generate(products, cfg.SiteURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("generate sitemap")
	}

	outPath := filepath.Join(cfg.PublicDir, "sitemap-products.xml")
	if err := os.WriteFile(outPath, xml, 0o644); err != nil {
		logger.Fatal().Err(err).Str("path", outPath).Msg("write sitemap")
	}
	logger.Info().Str("path", outPath).Int("urls", len(products)).Msg("sitemap written")
}
