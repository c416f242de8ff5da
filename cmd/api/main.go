package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/medicare-api/internal/config"
	"github.com/harentsoaR/medicare-api/internal/export"
	"github.com/harentsoaR/medicare-api/internal/handlers"
	"github.com/harentsoaR/medicare-api/internal/middleware"
	"github.com/harentsoaR/medicare-api/internal/observability"
	"github.com/harentsoaR/medicare-api/internal/services"
	"github.com/harentsoaR/medicare-api/internal/stats"
	"github.com/harentsoaR/medicare-api/internal/storage"
	"github.com/harentsoaR/medicare-api/internal/store"
	"github.com/harentsoaR/medicare-api/internal/utils"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("medicare-api stopped")
		os.Exit(1)
	}
}

// run wires the application and serves until a signal or a server error.
// Every deferred cleanup runs before it returns.
func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		observability.InitLogger("medicare-api", "development")
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	observability.InitLogger("medicare-api", cfg.Server.Env)
	if envErr != nil {
		log.Info().Msg("No .env file found, relying on environment variables.")
	}

	// --- Storage ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	kv, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	defer kv.Close()
	log.Info().Str("backend", cfg.Storage.Backend).Msg("Storage ready")

	ids, err := store.NewIDGenerator(cfg.Storage.IDStrategy)
	if err != nil {
		return err
	}
	stores := store.New(kv, store.Options{IDs: ids, Logger: observability.GetLogger()})

	aggregator := stats.NewAggregator(cfg.Dashboard.RevenueUnitPrice, time.Now)
	aggregator.Watch(stores)
	if err := stores.LoadAll(ctx); err != nil {
		return fmt.Errorf("failed to load collections: %w", err)
	}

	// --- Services ---
	notificationSvc := services.NewNotificationService(cfg.Notifications.TextbeltAPIKey)
	scheduler := services.NewScheduler(stores, notificationSvc, aggregator, time.Now)
	if err := scheduler.Start(cfg.Notifications.ReminderCron); err != nil {
		return err
	}
	defer scheduler.Stop()

	h := handlers.NewHandler(stores, aggregator, export.NewGenerator(time.Now), notificationSvc)
	if cfg.Auth.Enabled {
		h.WithAuth(cfg.Auth, utils.NewTokenIssuer(cfg.Auth.JWTSecret, time.Now))
	}

	// --- Gin Router ---
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
	}))
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	log.Info().Str("port", cfg.Server.Port).Bool("auth", cfg.Auth.Enabled).Msg("Starting server")
	return serve(srv, quit)
}

// serve runs srv until quit fires or the listener fails, then shuts it down.
func serve(srv *http.Server, quit <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var failed error
	select {
	case <-quit:
		log.Info().Msg("Shutting down server")
	case err := <-serverErr:
		failed = fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	return failed
}
