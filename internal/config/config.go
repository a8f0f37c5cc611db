package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ShutdownTimeout time.Duration
	PublicDir       string
	ProductsFile    string
	OrdersFile      string
	SiteURL         string

	// Storefront client settings.
	APIBaseURL            string
	FreeShippingThreshold int64
	CartDir               string
	RedisAddr             string
	WhatsAppPhone         string
	OrderEmail            string
}

// FromEnv builds Config with defaults, overridden by environment
// variables. An empty DB_DSN runs the API on the JSON-file fallback.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":3000"),
		DBConnString:    os.Getenv("DB_DSN"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		PublicDir:       envOrDefault("PUBLIC_DIR", "public"),
		ProductsFile:    envOrDefault("PRODUCTS_FILE", "public/data/products.json"),
		OrdersFile:      envOrDefault("ORDERS_FILE", "data/orders.json"),
		SiteURL:         envOrDefault("SITE_URL", "https://www.jantaoptical.com"),

		APIBaseURL:            envOrDefault("API_BASE_URL", "http://localhost:3000"),
		FreeShippingThreshold: envInt64("FREE_SHIPPING_THRESHOLD", 4999),
		CartDir:               envOrDefault("CART_DIR", "data/cart"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		WhatsAppPhone:         envOrDefault("WHATSAPP_PHONE", "918768837581"),
		OrderEmail:            envOrDefault("ORDER_EMAIL", "support@jantaoptical.com"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
