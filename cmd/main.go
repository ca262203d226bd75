// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mergington/school-activities/internal/config"
	"github.com/mergington/school-activities/internal/handler"
	"github.com/mergington/school-activities/internal/service"
	"github.com/mergington/school-activities/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// ── 1. Load config and seed the roster ───────────────────────────────
	cfg := config.ServerFromEnv()
	seed, err := config.Seed(cfg.ActivitiesFile)
	if err != nil {
		slog.Error("load activity seed", "error", err)
		os.Exit(1)
	}
	rosterStore := store.New(seed)
	slog.Info("roster seeded", "activities", len(seed))

	// ── 2. Wire up layers ────────────────────────────────────────────────
	rosterSvc := service.New(rosterStore)
	activityHandler := handler.NewActivityHandler(rosterSvc)
	router := handler.NewRouter(activityHandler, cfg.WebDir)

	// ── 3. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in a background goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
