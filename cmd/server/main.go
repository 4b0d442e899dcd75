package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/app"
	"github.com/cx-tal-miterani/flightselect/internal/config"
	"github.com/cx-tal-miterani/flightselect/internal/handlers"
	"github.com/cx-tal-miterani/flightselect/internal/router"
	"github.com/cx-tal-miterani/flightselect/internal/service"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()

	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize search", "error", err)
		os.Exit(1)
	}
	defer components.Close()

	// Resolve in-process unless a Temporal server is configured
	var flightService service.FlightService = components.Resolver
	if cfg.TemporalHost != "" {
		temporalClient, err := client.Dial(client.Options{
			HostPort: cfg.TemporalHost,
			Logger:   tlog.NewStructuredLogger(logger),
		})
		if err != nil {
			logger.Error("Failed to create Temporal client", "error", err)
			os.Exit(1)
		}
		defer temporalClient.Close()

		flightService = service.NewTemporalService(temporalClient, cfg.TemporalTaskQueue)
		logger.Info("Connected to Temporal server", "host", cfg.TemporalHost, "taskQueue", cfg.TemporalTaskQueue)
	}

	h := handlers.NewHandler(flightService, components.Fetcher, components.Resolver, logger)
	r := router.SetupRouter(h, router.Options{AllowedOrigins: cfg.CORSOrigins, Logger: logger})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("API server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		return
	}

	logger.Info("Server stopped")
}
