package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/snapwork/snapwork/internal/config"
	"github.com/snapwork/snapwork/internal/database"
	"github.com/snapwork/snapwork/internal/handler"
	"github.com/snapwork/snapwork/internal/middleware"
	"github.com/snapwork/snapwork/internal/service"
	"github.com/snapwork/snapwork/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize New Relic (optional)
	var nrApp *newrelic.Application
	if cfg.NewRelicEnabled && cfg.NewRelicLicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelicAppName),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
			newrelic.ConfigInfoLogger(os.Stdout),
		)
		if err != nil {
			log.Printf("Warning: Failed to initialize New Relic: %v", err)
		} else if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		} else {
			log.Println("New Relic connected")
		}
	}

	// Initialize the record store (one backend, selected at startup)
	var recordStore store.Store
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(cfg.DatabaseURL, cfg.DBMaxConnections, cfg.DBMaxIdleConnections)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()

		recordStore, err = store.NewPostgresStore(db.DB)
		if err != nil {
			log.Fatalf("Failed to initialize postgres store: %v", err)
		}
		log.Println("Using postgres record store")
	default:
		recordStore, err = store.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to initialize file store: %v", err)
		}
		log.Printf("Using file record store in %s", cfg.DataDir)
	}

	// Initialize Redis
	redis, err := database.NewRedis(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()
	log.Println("Connected to Redis")

	// Initialize services
	discoveryService := service.NewDiscoveryService(recordStore)
	gigService := service.NewGigService(recordStore)
	authService := service.NewAuthService(recordStore, redis.Client)
	reviewService := service.NewReviewService(recordStore)
	userService := service.NewUserService(recordStore)

	// Initialize handlers
	gigHandler := handler.NewGigHandler(discoveryService, gigService, cfg.DefaultRadiusKm)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, discoveryService, reviewService, cfg.DefaultRadiusKm)
	reviewHandler := handler.NewReviewHandler(reviewService)
	configHandler := handler.NewConfigHandler(cfg.PageSize, cfg.DefaultRadiusKm)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
		ExposedHeaders:   []string{"Link", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// New Relic middleware
	if nrApp != nil {
		r.Use(middleware.NewRelicMiddleware(nrApp))
	}

	// Rate limiter (100 requests per minute per IP)
	rateLimiter := middleware.NewRateLimiter(redis.Client, 100, time.Minute)
	r.Use(rateLimiter.Handler)

	// Idempotency middleware
	idempotencyMw := middleware.NewIdempotencyMiddleware(redis.Client)
	r.Use(idempotencyMw.Handler)

	// Serve frontend
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "frontend/index.html")
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := recordStore.Health(ctx); err != nil {
			http.Error(w, "storage unhealthy", http.StatusServiceUnavailable)
			return
		}
		if err := redis.Health(ctx); err != nil {
			http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","services":{"storage":"up","redis":"up"}}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		gigHandler.RegisterRoutes(r)
		authHandler.RegisterRoutes(r)
		userHandler.RegisterRoutes(r)
		reviewHandler.RegisterRoutes(r)
		configHandler.RegisterRoutes(r)
	})

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("SnapWork server starting on port %s", cfg.Port)
	log.Println("API endpoints:")
	log.Println("  GET  /api/gigs                     - List gigs (category/search/sort/lat/lng/radiusKm)")
	log.Println("  GET  /api/gigs/{id}                - Get gig")
	log.Println("  POST /api/gigs                     - Post gig")
	log.Println("  POST /api/gigs/{id}/apply          - Apply for gig")
	log.Println("  POST /api/gigs/{id}/hire           - Hire a worker")
	log.Println("  POST /api/gigs/{id}/complete       - Mark gig completed")
	log.Println("  POST /api/auth/register            - Register")
	log.Println("  POST /api/auth/login               - Login")
	log.Println("  GET  /api/workers                  - List workers (search/lat/lng/radiusKm)")
	log.Println("  GET  /api/users/{id}/profile       - User profile")
	log.Println("  POST /api/reviews                  - Post review")
	log.Println("  GET  /api/users/{id}/reviews       - User reviews")
	log.Println("  GET  /api/users/{id}/completed-gigs - Completed gigs")
	log.Println("  GET  /api/config                   - Client settings")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped gracefully")
}
