package handlers

import (
	"github.com/abdulhafizu/HafeezVentures2/cmd/docs"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/abdulhafizu/HafeezVentures2/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes. A nil limiter disables
// rate limiting on the API group.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	chain := []gin.HandlerFunc{}
	if rateLimiter != nil {
		chain = append(chain, middleware.RateLimit(rateLimiter))
	}
	chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	v1 := r.Group("/api/v1", chain...)

	registerHomeRoutes(v1)
	registerLedgerRoutes(v1, service.Ledger)
	registerMeteringRoutes(v1, service.Metering)
	registerPartyRoutes(v1, service.Party)
	registerIntakeRoutes(v1, service.Intake)
	registerRecyclingRoutes(v1, service.Recycling, service.Reporting)
	registerPayrollRoutes(v1, service.Payroll)
	registerPayableRoutes(v1, service.Payable)
	registerCostingRoutes(v1, service.Costing)
	registerExpenseRoutes(v1, service.Expense)
	registerReportingRoutes(v1, service.Reporting)
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
