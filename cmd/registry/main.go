package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"flyweight-registry/internal/car"
	"flyweight-registry/internal/catalog"
	"flyweight-registry/internal/config"
	"flyweight-registry/internal/flyweight"
	"flyweight-registry/internal/handlers"
	"flyweight-registry/internal/httpserver"
	"flyweight-registry/internal/metrics"
	"flyweight-registry/pkg/logging/logging"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("registry exited with error: %v", err)
	}
}

func run() error {
	// ----- Logger -----
	logger := logging.DefaultLogger()
	defer logger.Sync()

	// ----- Metrics -----
	metrics.Register()

	// ----- Config -----
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg := loaded.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("loaded config",
		zap.String("port", cfg.Port),
		zap.String("catalog_backend", cfg.CatalogBackend),
		zap.String("redis_addr", cfg.RedisAddr),
		zap.String("catalog_prefix", cfg.CatalogPrefix),
		zap.Duration("request_timeout", cfg.RequestTimeout),
	)

	// ----- Redis client (only if needed) -----
	var redisClient *redis.Client
	if cfg.CatalogBackend == catalog.BackendRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer redisClient.Close()

		// Fail fast if Redis is misconfigured
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Error("redis connection failed", zap.Error(err))
			return err
		}
		logger.Info("redis connection established", zap.String("addr", cfg.RedisAddr))
	}

	// ----- Catalog -----
	cat, err := catalog.NewCatalog(catalog.Config{
		Backend: cfg.CatalogBackend,
		Prefix:  cfg.CatalogPrefix,
	}, redisClient)
	if err != nil {
		return err
	}
	cat = catalog.NewLoggingCatalog(cat)

	// ----- Flyweight registry -----
	registry := car.NewRegistry(
		flyweight.WithObserver(car.NewLoggingObserver(logger)),
	)
	prometheus.MustRegister(metrics.NewFlyweightEntries(registry.Len))

	// ----- Router + middleware -----
	r := chi.NewRouter()
	httpserver.SetupRouter(r, logger, handlers.NewCarHandler(registry, cat), httpserver.Options{
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	})

	// ----- HTTP server -----
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("starting registry",
		zap.String("addr", srv.Addr),
		zap.String("catalog_backend", cfg.CatalogBackend),
	)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ----- Graceful shutdown -----
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
		return nil
	case <-stop:
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("server shutdown complete", zap.Int("flyweights", registry.Len()))
	return nil
}
