package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dunkstore-backend/config"
	"dunkstore-backend/internal/delivery/http/middleware"
	v1 "dunkstore-backend/internal/delivery/http/v1"
	"dunkstore-backend/internal/infrastructure/cache"
	slotrepo "dunkstore-backend/internal/repository/slot"
	staticrepo "dunkstore-backend/internal/repository/static"
	"dunkstore-backend/internal/usecase"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/metrics"
	"dunkstore-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
)

const serviceName = "dunkstore-api"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Initialize Metrics
	// Go and process collectors ride along with the store counters
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(reg)

	// Initialize Cache (In-Memory)
	// Catalog lookups, live session bundles and the memory slot backend
	catalogCache := cache.NewMemoryCache(cfg.CacheCatalogTTL, 2*cfg.CacheCatalogTTL)
	liveSessions := cache.NewMemoryCache(cfg.SessionIdleTTL, time.Minute)
	slotCache := cache.NewMemoryCache(0, 10*time.Minute)

	// Initialize Slot Storage (memory, sqlite, postgres, redis or r2)
	slots, err := slotrepo.Open(ctx, cfg, slotCache)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.SlotBackend).Msg("Failed to open slot storage")
	}

	// --- Modules Initialization ---

	// Catalog Module
	catalogRepo := staticrepo.NewCatalogRepository()
	catalogUC := usecase.NewCatalogUsecase(catalogRepo, catalogCache, cfg)

	// Session Module (cart, favorites, search, auth)
	sessionUC := usecase.NewSessionUsecase(liveSessions, slots, catalogUC, usecase.SessionConfig{
		IdleTTL:     cfg.SessionIdleTTL,
		SlotTimeout: cfg.SlotTimeout,
		AuthLatency: cfg.AuthLatency,
		AuthTimeout: cfg.AuthTimeout,
	}, storeMetrics)

	// Set up Router
	mux := http.NewServeMux()
	v1.RegisterRoutes(mux, v1.Handlers{
		Catalog:   v1.NewCatalogHandler(catalogUC),
		Cart:      v1.NewCartHandler(sessionUC, catalogUC),
		Favorites: v1.NewFavoritesHandler(sessionUC, catalogUC),
		Search:    v1.NewSearchHandler(sessionUC),
		Auth:      v1.NewAuthHandler(sessionUC),
	})

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"storage": cfg.SlotBackend,
		})
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Root health check for load balancers
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// Initialize Rate Limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiterFromConfig(ctx, cfg)

	// Apply Middleware
	// Outermost first: session, CORS, request logger, rate limit, gzip
	handler := gziphandler.GzipHandler(mux)
	handler = rateLimiter.Middleware()(handler)
	handler = middleware.RequestLogger(handler)
	handler = middleware.NewCORSMiddleware(cfg)(handler)
	handler = middleware.NewSessionMiddleware(cfg)(handler)

	// Start Server
	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart(serviceName, version, cfg.Port)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	// Stop background workers
	rateLimiter.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Drain in-flight requests, then close the slot backend
	err = multierr.Append(srv.Shutdown(shutdownCtx), slots.Close())
	stop()
	if err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	logger.ServiceStop(serviceName)
}
