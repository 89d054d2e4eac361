package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventpulse/config"
	"eventpulse/internal/adapters/apify"
	httpdelivery "eventpulse/internal/delivery/http"
	"eventpulse/internal/delivery/http/controllers"
	"eventpulse/internal/delivery/http/middleware"
	"eventpulse/internal/domain"
	"eventpulse/internal/repository/memory"
	"eventpulse/internal/repository/postgres"
	"eventpulse/internal/services"

	_ "eventpulse/docs"

	_ "github.com/lib/pq"
)

const (
	serviceTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

// @title EventPulse API
// @version 1.0
// @description Aggregated event feed combining externally discovered events with locally managed ones.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	var nativeRepo domain.NativeEventRepository
	switch cfg.EventStore {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("failed to reach database", "err", err)
			os.Exit(1)
		}
		nativeRepo = postgres.NewNativeEventRepository(db)
	default:
		nativeRepo = memory.NewNativeEventRepository(memory.SeedEvents())
	}

	fetcher := apify.NewHTTPFetcher(&http.Client{Timeout: serviceTimeout}, cfg.ApifyAPIToken, cfg.ApifyActorID)
	feed := services.NewFeedService(logger, fetcher, nativeRepo, cfg.FeedCacheTTL, serviceTimeout)
	nativeService := services.NewNativeEventService(nativeRepo, serviceTimeout)

	feedController := controllers.NewFeedController(logger, feed)
	nativeController := controllers.NewNativeEventController(logger, nativeService)

	mux := httpdelivery.NewRouter(feedController, nativeController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "store", cfg.EventStore, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
