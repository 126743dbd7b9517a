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

	"github.com/SscSPs/correspondence_app/internal/adapters/analytics"
	cacheredis "github.com/SscSPs/correspondence_app/internal/adapters/cache/redis"
	"github.com/SscSPs/correspondence_app/internal/adapters/database/pgsql"
	"github.com/SscSPs/correspondence_app/internal/adapters/memory"
	"github.com/SscSPs/correspondence_app/internal/adapters/search"
	portsrepo "github.com/SscSPs/correspondence_app/internal/core/ports/repositories"
	"github.com/SscSPs/correspondence_app/internal/core/services"
	"github.com/SscSPs/correspondence_app/internal/dto"
	"github.com/SscSPs/correspondence_app/internal/events"
	"github.com/SscSPs/correspondence_app/internal/handlers"
	"github.com/SscSPs/correspondence_app/internal/middleware"
	"github.com/SscSPs/correspondence_app/internal/platform/config"
	"github.com/SscSPs/correspondence_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// @title Correspondence Backend API
// @version 1.0
// @description Letter lifecycle, approval chain, disposisi routing and numbering service.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthChecks := map[string]handlers.HealthCheck{}

	repos, closeRepos, err := setupRepositories(ctx, cfg, logger, healthChecks)
	if err != nil {
		logger.Error("Failed to set up repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeRepos()

	if cfg.SeedFile != "" {
		seed, err := config.LoadSeed(cfg.SeedFile)
		if err != nil {
			logger.Error("Failed to load seed file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := seed.Apply(ctx, repos); err != nil {
			logger.Error("Failed to apply seed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Directory seeded", slog.Int("units", len(seed.Units)), slog.Int("users", len(seed.Users)))
	}

	templates, err := config.LoadNumberingTemplates(cfg.NumberingTemplatesFile)
	if err != nil {
		logger.Error("Failed to load numbering templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis takes over ordinal reservation and rate limit counters when configured
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		store, err := cacheredis.NewSequenceStore(cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer store.Close()
		repos.Sequences = store
		redisClient = store.Client()
		healthChecks["redis"] = store.Ping
		logger.Info("Letter ordinals reserved in Redis")
	}

	var meiliIndex *search.Meili
	if cfg.MeiliURL != "" {
		meiliIndex = search.NewMeili(cfg.MeiliURL, cfg.MeiliAPIKey, cfg.MeiliIndex, logger)
		defer meiliIndex.Close()
	}
	searchService := search.NewService(meiliIndex, repos.Search)
	repos.Search = searchService

	posthogClient := analytics.NewPosthogClient(cfg.PosthogAPIKey, cfg.PosthogHost, logger)
	defer posthogClient.Close()

	bus := events.NewBus(cfg.EventBufferSize, logger)
	bus.Subscribe("search", searchService.HandleLetterEvent)
	bus.Subscribe("analytics", posthogClient.HandleLetterEvent)
	// Not tied to the signal context: requests finishing during shutdown still publish.
	stopBus := bus.Start()

	svc := services.NewServiceContainer(repos, templates, services.WithEventPublisher(bus))

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := newRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svc, handlers.RouterDeps{
		Limiter:      rateLimiter,
		Tracker:      posthogClient,
		HealthChecks: healthChecks,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	stopBus()
}

// setupRepositories returns the PostgreSQL repositories when a database URL is configured and the
// in-memory store otherwise.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger, healthChecks map[string]handlers.HealthCheck) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		logger.Warn("No database configured, letters are kept in memory and lost on restart")
		letters := memory.NewLetterStore()
		directory := memory.NewDirectory()
		return portsrepo.RepositoryProvider{
			LetterRepo:         letters,
			UserRepo:           directory,
			UnitRepo:           directory,
			ClassificationRepo: directory,
			Sequences:          memory.NewSequenceReserver(),
			Search:             letters,
		}, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, "file://migrations", logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	healthChecks["database"] = dbPool.Ping
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// newRateLimiter builds the per-user limiter. Counters live in Redis when a client is given so
// that every replica shares them.
func newRateLimiter(formatted string, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return limiter.New(limitermemory.NewStore(), rate), nil
	}
	store, err := limiterredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: "letter-ratelimit"})
	if err != nil {
		return nil, err
	}
	return limiter.New(store, rate), nil
}
