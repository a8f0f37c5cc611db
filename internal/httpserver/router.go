package httpserver

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// buildRouter wires all storefront routes. API routes are registered before
// static serving so they always take priority.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps, publicDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler)
		api.GET("/products", listProductsHandler(deps.Products))
		api.GET("/products/:id", getProductHandler(deps.Products))
		api.POST("/orders", createOrderHandler(deps.Orders))
	}

	if publicDir != "" {
		if _, err := os.Stat(publicDir); err == nil {
			router.NoRoute(gin.WrapH(http.FileServer(http.Dir(publicDir))))
		} else {
			logger.Warn().Str("dir", publicDir).Msg("public dir missing, static serving disabled")
		}
	}

	return router
}
