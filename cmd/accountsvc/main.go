package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/banking-ms/account-movement-service/cmd/docs"
	"github.com/banking-ms/account-movement-service/internal/adapters/clientdir"
	"github.com/banking-ms/account-movement-service/internal/core/services"
	"github.com/banking-ms/account-movement-service/internal/handlers"
	"github.com/banking-ms/account-movement-service/internal/middleware"
	"github.com/banking-ms/account-movement-service/internal/repositories/database/pgsql"
	"github.com/banking-ms/account-movement-service/pkg/config"
	"github.com/banking-ms/account-movement-service/pkg/database"
)

// @title Account Movement Service API
// @version 1.0
// @description Bank account and movement management with statement reporting.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(logger, cfg.DatabaseURL, "file://migrations"); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	// Wire repositories, services and handlers.
	accountRepo := pgsql.NewAccountRepository(dbPool)
	movementRepo := pgsql.NewMovementRepository(dbPool)

	accountService := services.NewAccountService(accountRepo)
	movementService := services.NewMovementService(movementRepo, accountRepo)

	dirOptions := []clientdir.Option{}
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL", slog.String("error", err.Error()))
			os.Exit(1)
		}
		dirOptions = append(dirOptions, clientdir.WithRedisCache(redis.NewClient(redisOpts)))
		logger.Info("Client name cache enabled.")
	}
	clientDirectory := clientdir.NewHTTPClientDirectory(cfg.ClientServiceURL, dirOptions...)

	reportingService := services.NewReportingService(movementRepo, accountRepo, clientDirectory)

	handlers.RegisterAccountServiceRoutes(r, cfg, accountService, movementService, reportingService)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	return corsCfg
}
