package handlers

import (
	"github.com/SscSPs/networth_tracker/cmd/docs"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/SscSPs/networth_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// apiMiddleware runs on the /api/v1 group after authentication.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	v1.Use(apiMiddleware...)
	RegisterAPIRoutes(v1, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// RegisterAPIRoutes delegates route registration to the specific handlers.
func RegisterAPIRoutes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerUserRoutes(v1, services.User)
	registerCurrencyRoutes(v1, services.Currency, services.CurrencyRate)
	registerRateDatumRoutes(v1, services.RateDatum)
	registerContainerRoutes(v1, services.Valuation, services.History)
	registerCalculationsRoutes(v1, services.History, services.Caches)
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
