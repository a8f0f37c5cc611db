package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	orderrepo "optical-storefront/internal/repository/order"
	productrepo "optical-storefront/internal/repository/product"
)

// Deps are the collaborators the handlers need.
type Deps struct {
	Products productrepo.Repository
	Orders   orderrepo.Repository
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
	db         *pgxpool.Pool
}

// New builds a Server with all storefront routes. db may be nil when
// running on the file fallback; readiness reports a degraded state then.
func New(addr string, logger zerolog.Logger, db *pgxpool.Pool, deps Deps, publicDir string) *Server {
	router := buildRouter(logger, db, deps, publicDir)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		db:         db,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			// File fallback mode: degraded but serving.
			c.JSON(http.StatusOK, gin.H{"status": "ready", "mode": "file"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
