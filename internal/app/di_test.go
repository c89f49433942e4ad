package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/jwtcrack/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:               "error",
		ServerHost:             "localhost",
		ServerPort:             8080,
		ShutdownTimeout:        time.Second,
		SearchMinLength:        1,
		SearchMaxLength:        4,
		SearchProgressInterval: 10 * time.Millisecond,
		SearchProgressBuffer:   16,
		SearchMaxConcurrent:    1,
		MetricsEnabled:         true,
		MetricsNamespace:       "jwtcrack",
		MetricsPort:            8081,
	}
}

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "debug",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Calling Logger() again should return the same instance (singleton)
	logger2 := container.Logger()
	if logger != logger2 {
		t.Error("expected same logger instance on multiple calls")
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "invalid",
	}

	container := NewContainer(cfg)
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info level to be enabled")
	}
}

// TestContainerInitializationErrors verifies that initialization errors are stored and repeated.
func TestContainerInitializationErrors(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false

	container := NewContainer(cfg)

	_, err := container.MetricsServer()
	if err == nil {
		t.Error("expected error when metrics are disabled")
	}

	_, err2 := container.MetricsServer()
	if err2 == nil {
		t.Error("expected error on second call to MetricsServer()")
	}
}

// TestContainerMetricsDisabled verifies that disabled metrics fall back to no-op recorders.
func TestContainerMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsEnabled = false

	container := NewContainer(cfg)

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider != nil {
		t.Error("expected nil metrics provider when metrics are disabled")
	}

	businessMetrics, err := container.BusinessMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if businessMetrics == nil {
		t.Error("expected no-op business metrics")
	}
}

// TestContainerLazyInitialization verifies that components are only initialized when accessed.
func TestContainerLazyInitialization(t *testing.T) {
	cfg := testConfig()

	container := NewContainer(cfg)

	if container.logger != nil {
		t.Error("expected logger to be nil before first access")
	}
	if container.searchManager != nil {
		t.Error("expected search manager to be nil before first access")
	}

	manager, err := container.SearchManager()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager == nil {
		t.Fatal("expected non-nil search manager")
	}

	// Building the manager pulls in its dependencies
	if container.logger == nil {
		t.Error("expected logger to be initialized after access")
	}
	if container.searchUseCase == nil {
		t.Error("expected search use case to be initialized after access")
	}

	manager2, err := container.SearchManager()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager != manager2 {
		t.Error("expected same search manager instance on multiple calls")
	}

	if err := container.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}

// TestContainerHTTPServer verifies that the API server is wired with every handler.
func TestContainerHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	container := NewContainer(testConfig())

	server, err := container.HTTPServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range []string{"/health", "/v1/searches"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		server.GetHandler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected status 200, got %d", path, w.Code)
		}
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsServer.GetHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /metrics: expected status 200, got %d", w.Code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := container.Shutdown(ctx); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}

// TestContainerShutdown verifies that the shutdown method can be called safely.
func TestContainerShutdown(t *testing.T) {
	cfg := &config.Config{
		LogLevel: "info",
	}

	container := NewContainer(cfg)

	// Shutdown should not fail even if no components are initialized
	if err := container.Shutdown(context.TODO()); err != nil {
		t.Errorf("unexpected error during shutdown: %v", err)
	}
}
