package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/correspondence_app/cmd/docs"
	portssvc "github.com/SscSPs/correspondence_app/internal/core/ports/services"
	"github.com/SscSPs/correspondence_app/internal/middleware"
	"github.com/SscSPs/correspondence_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// RouterDeps carries the optional collaborators of the HTTP surface.
type RouterDeps struct {
	Limiter      *limiter.Limiter
	Tracker      middleware.EventTracker
	HealthChecks map[string]HealthCheck
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	// Add health check route
	r.GET("/health", healthHandler(deps.HealthChecks))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	// Apply AuthMiddleware to the entire v1 group; the limiter keys on the user it sets
	chain := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.JWTSecret)}
	if deps.Limiter != nil {
		chain = append(chain, middleware.RateLimit(deps.Limiter))
	}
	if deps.Tracker != nil {
		chain = append(chain, middleware.PosthogMiddleware(deps.Tracker))
	}
	v1 := r.Group("/api/v1", chain...)

	RegisterLetterRoutes(v1, service.Letter)
	RegisterLifecycleRoutes(v1, service.Lifecycle, service.Numbering)
	RegisterDisposisiRoutes(v1, service.Disposisi)
	RegisterDirectoryRoutes(v1, service.Directory)
}

// healthHandler answers 200 when every check passes and 503 otherwise.
func healthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(checks) == 0 {
			c.String(http.StatusOK, "OK")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		result := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				middleware.GetLoggerFromCtx(ctx).Warn("Health check failed", slog.String("dependency", name), slog.String("error", err.Error()))
				result[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			result[name] = "ok"
		}
		c.JSON(status, result)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
