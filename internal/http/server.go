// Package http provides the API server, the metrics server and shared middleware.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/jwtcrack/internal/config"
	"github.com/allisson/jwtcrack/internal/metrics"
	searchHTTP "github.com/allisson/jwtcrack/internal/search/http"
	tokenHTTP "github.com/allisson/jwtcrack/internal/token/http"
)

// Server is the API server.
type Server struct {
	server       *http.Server
	router       *gin.Engine
	logger       *slog.Logger
	shuttingDown atomic.Bool
}

// NewServer creates a new API server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// SetupRouter registers middleware and routes. ctx bounds background
// middleware work such as rate limiter cleanup.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	searchHandler *searchHTTP.SearchHandler,
	tokenHandler *tokenHTTP.TokenHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	searches := v1.Group("/searches")
	{
		searches.POST("", searchHandler.CreateHandler)
		searches.GET("", searchHandler.ListHandler)
		searches.GET("/:id", searchHandler.GetHandler)
		searches.DELETE("/:id", searchHandler.DeleteHandler)
	}

	tokens := v1.Group("/tokens")
	{
		tokens.POST("/decode", tokenHandler.DecodeHandler)
		tokens.POST("/verify", tokenHandler.VerifyHandler)
		tokens.POST("/sign", tokenHandler.SignHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start serves requests until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router is not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server not ready and gracefully stops it.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shuttingDown.Store(true)
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if s.shuttingDown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
