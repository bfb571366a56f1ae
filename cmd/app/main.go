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

	"github.com/chris/pooled-savings/pkg/api"
	"github.com/chris/pooled-savings/pkg/bootstrap"
	"github.com/chris/pooled-savings/pkg/config"
	"github.com/chris/pooled-savings/pkg/handlers"
	"github.com/chris/pooled-savings/pkg/handlers/respond"
	wshandler "github.com/chris/pooled-savings/pkg/handlers/websockets"
	"github.com/chris/pooled-savings/pkg/metrics"
	"github.com/chris/pooled-savings/pkg/middleware"
	"github.com/chris/pooled-savings/pkg/notify"
	"github.com/chris/pooled-savings/pkg/websockets"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to wire service", "error", err)
		os.Exit(1)
	}
	logger := app.Logger

	// Events go to the queue and to any live connection of the user.
	hub := websockets.NewHub(logger)
	publisher := notify.Fanout{app.Publisher, hub}

	// Create our handler
	handler := handlers.NewApiHandler(app.Service, publisher)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.NewStructuredLogger(logger))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", metrics.Handler())
	router.Handle("/ws", wshandler.NewHandler(hub, logger))

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		api.HandlerWithOptions(handler, api.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: respond.ParamError,
		})
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting server", slog.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
