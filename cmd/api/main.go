// Cycle Phase Calculator API
//
// REST API for classifying calendar dates into menstrual-cycle phases.
//
//	@title			Cycle Phase Calculator API
//	@version		1.0
//	@description	Classify a calendar date into a menstrual-cycle phase from the last period start date, average cycle length and average period duration.
//
//	@BasePath	/v1
//
//	@tag.name			cycle-calculator
//	@tag.description	Menstrual cycle phase classification
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/cycle-phase/internal/api"
	"github.com/blaisecz/cycle-phase/internal/api/handler"
	"github.com/blaisecz/cycle-phase/internal/config"
	"github.com/blaisecz/cycle-phase/internal/logger"
	"github.com/blaisecz/cycle-phase/internal/service"
	"github.com/blaisecz/cycle-phase/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	if cfg.TracingEnabled() {
		log.Info("tracing enabled", "endpoint", cfg.OTLPEndpoint, "service_name", cfg.ServiceName)
	}

	// Initialize services
	phaseService := service.NewPhaseService(time.Now, log)

	// Initialize handlers
	phaseHandler := handler.NewPhaseHandler(phaseService)

	// Setup router
	router := api.NewRouter(phaseHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("failed to flush traces", "error", err)
	}
	log.Info("server stopped")
}
