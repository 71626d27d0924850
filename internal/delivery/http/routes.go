package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foodpulse/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Health check and metrics endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api")
	{
		api.GET("/search", handler.Search)
		api.POST("/contact", handler.Contact)
		api.POST("/newsletter", handler.Newsletter)

		calculators := api.Group("/calculators")
		{
			calculators.POST("/bmi", handler.CalculateBMI)
			calculators.POST("/calories", handler.CalculateCalories)
			calculators.POST("/macros", handler.CalculateMacros)
			calculators.POST("/protein", handler.CalculateProtein)
			calculators.POST("/fiber", handler.CalculateFiber)
			calculators.POST("/hydration", handler.CalculateHydration)
			calculators.POST("/caffeine", handler.CalculateCaffeine)
		}
	}

	return router
}
