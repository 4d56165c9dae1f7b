package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aesthetics360/planstudio/internal/adapters/cache"
	"github.com/aesthetics360/planstudio/internal/adapters/database"
	"github.com/aesthetics360/planstudio/internal/adapters/events"
	"github.com/aesthetics360/planstudio/internal/api/handlers"
	"github.com/aesthetics360/planstudio/internal/api/middleware"
	"github.com/aesthetics360/planstudio/internal/api/routes"
	"github.com/aesthetics360/planstudio/internal/application/services"
	"github.com/aesthetics360/planstudio/internal/document"
	"github.com/aesthetics360/planstudio/internal/domain/providers"
	"github.com/aesthetics360/planstudio/internal/domain/repositories"
	"github.com/aesthetics360/planstudio/internal/infrastructure/clients/openai"
	"github.com/aesthetics360/planstudio/internal/infrastructure/clients/postgres"
	"github.com/aesthetics360/planstudio/internal/infrastructure/clients/redis"
	"github.com/aesthetics360/planstudio/internal/infrastructure/observability"
	"github.com/aesthetics360/planstudio/pkg/config"
)

func main() {

	// Load configuration

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - the application can work without caching
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize event bus for catalog change notifications
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Println("Event bus initialized successfully")
	} else {
		log.Println("Event bus disabled (Redis not available)")
	}

	// Create base catalog adapter, wrapped with caching when available
	var catalogRepo repositories.CatalogRepository = database.NewCatalogAdapter(pgClient)
	if cacheProvider != nil {
		catalogRepo = database.NewCachedCatalogAdapter(catalogRepo, cacheProvider, cfg.Catalog.CacheTTLSeconds)
		log.Println("Catalog adapter wrapped with caching layer")
	} else {
		log.Println("Catalog adapter running without cache (Redis unavailable)")
	}

	// Event-driven cache invalidation keeps other instances consistent
	// when a tenant's catalog changes
	var cacheInvalidation *services.CacheInvalidationService
	if cacheProvider != nil && eventBus != nil {
		cacheInvalidation = services.NewCacheInvalidationService(cacheProvider, eventBus)
		if err := cacheInvalidation.Start(); err != nil {
			log.Printf("Warning: Failed to start cache invalidation service: %v", err)
			cacheInvalidation = nil
		}
	}

	// Warm the default tenant's catalog so the first request after boot
	// skips the database
	if cacheProvider != nil {
		warming := services.NewCacheWarmingService(
			catalogRepo,
			cacheProvider,
			[]string{"default"},
			cfg.Catalog.CacheTTLSeconds,
		)
		warming.StartPeriodicWarming(ctx, 10*time.Minute)
	}

	// Initialize the AI suggestion provider
	var suggestionProvider providers.SuggestionProvider
	if cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set; AI suggestions disabled")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			log.Printf("Warning: Failed to initialize OpenAI client: %v", err)
		} else {
			suggestionProvider = openaiClient
		}
	}

	// Initialize services

	catalogService := services.NewCatalogService(catalogRepo, eventBus)
	pricingService := services.NewPricingService()
	planService := services.NewPlanService()
	templateService := services.NewTemplateService()
	reorderService := services.NewReorderService(planService)
	editorService := services.NewEditorService(pricingService, planService, suggestionProvider)
	suggestionService := services.NewSuggestionService(suggestionProvider, pricingService)

	exporter := document.NewExporter(cfg.Export, pricingService)

	// Initialize handlers

	catalogHandler := handlers.NewCatalogHandler(catalogService)

	planHandler := handlers.NewPlanHandler(
		catalogService,
		templateService,
		planService,
		pricingService,
		reorderService,
	)

	editorHandler := handlers.NewEditorHandler(catalogService, editorService)

	suggestionHandler := handlers.NewSuggestionHandler(catalogService, suggestionService)

	exportHandler := handlers.NewExportHandler(catalogService, exporter, metrics)

	var sseHandler *handlers.SSEHandler
	if eventBus != nil {
		sseHandler = handlers.NewSSEHandler(eventBus)
	}

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Println("Cache middleware initialized successfully")
	}

	// Set up router

	router := routes.NewRouter(
		catalogHandler,
		planHandler,
		editorHandler,
		suggestionHandler,
		exportHandler,
		sseHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Stop background services and close the event bus
	if cacheInvalidation != nil {
		cacheInvalidation.Stop()
	}
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	log.Println("Server stopped")
}
