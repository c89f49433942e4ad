package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/jwtcrack/internal/app"
	"github.com/allisson/jwtcrack/internal/config"
)

// server is the lifecycle shared by the API and metrics servers.
type server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// RunServer starts the HTTP API with graceful shutdown support.
// Loads configuration, initializes the DI container, and starts the Gin HTTP server
// plus the metrics server when metrics are enabled. Blocks until receiving
// SIGINT/SIGTERM or encountering a fatal error. On shutdown the servers stop
// first and running searches are cancelled, all within ShutdownTimeout.
func RunServer(ctx context.Context, version string) error {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on log level
	gin.SetMode(cfg.GetGinMode())

	// Create DI container
	container := app.NewContainer(cfg)

	// Get logger from container
	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	// Stops servers, cancels running searches and flushes metrics on exit
	defer closeContainer(container, logger, cfg.ShutdownTimeout)

	// Get HTTP server from container (this initializes all dependencies)
	apiServer, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	servers := map[string]server{"api": apiServer}

	if cfg.MetricsEnabled {
		metricsServer, err := container.MetricsServer()
		if err != nil {
			return fmt.Errorf("failed to initialize metrics server: %w", err)
		}
		servers["metrics"] = metricsServer
	}

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return runServers(ctx, logger, cfg.ShutdownTimeout, servers)
}

// runServers starts every server and blocks until ctx is done or one of them
// fails, then shuts all of them down. The first server error is returned.
func runServers(
	ctx context.Context,
	logger *slog.Logger,
	shutdownTimeout time.Duration,
	servers map[string]server,
) error {
	g, gctx := errgroup.WithContext(ctx)

	for name, srv := range servers {
		g.Go(func() error {
			if err := srv.Start(gctx); err != nil {
				return fmt.Errorf("%s server error: %w", name, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown signal received")
		} else {
			logger.Error("server error, initiating shutdown")
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var shutdownErr error
		for name, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil && shutdownErr == nil {
				shutdownErr = fmt.Errorf("%s server shutdown: %w", name, err)
			}
		}
		return shutdownErr
	})

	return g.Wait()
}
