package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/banking-ms/account-movement-service/cmd/docs"
	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/pkg/config"
)

// RegisterAccountServiceRoutes sets up the account service routes, injecting
// dependencies through interfaces.
func RegisterAccountServiceRoutes(
	r *gin.Engine,
	cfg *config.Config,
	accountService portssvc.AccountSvcFacade,
	movementService portssvc.MovementSvcFacade,
	reportingService portssvc.ReportingSvcFacade,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	registerAccountRoutes(v1, accountService, movementService)
	registerMovementRoutes(v1, movementService)
	registerReportRoutes(v1, reportingService)

	setupSwaggerRoutes(r, cfg)
}

// RegisterClientServiceRoutes sets up the client service routes.
func RegisterClientServiceRoutes(
	r *gin.Engine,
	cfg *config.Config,
	clientService portssvc.ClientSvcFacade,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	registerClientRoutes(v1, clientService)

	setupSwaggerRoutes(r, cfg)
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
