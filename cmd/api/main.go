package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/academically/academically-api/api/swagger"
	"github.com/academically/academically-api/internal/handler"
	"github.com/academically/academically-api/internal/middleware"
	"github.com/academically/academically-api/internal/repository"
	"github.com/academically/academically-api/internal/service"
	"github.com/academically/academically-api/pkg/config"
	"github.com/academically/academically-api/pkg/database"
	"github.com/academically/academically-api/pkg/logger"
	corsmiddleware "github.com/academically/academically-api/pkg/middleware/cors"
	reqidmiddleware "github.com/academically/academically-api/pkg/middleware/requestid"
)

// @title Academically API
// @version 1.0.0
// @description Institutes, careers and institute blog events
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	ctx := context.Background()
	if err := repository.EnsureSchema(ctx, db); err != nil {
		logr.Sugar().Fatalw("failed to ensure schema", "error", err)
	}
	if cfg.Seed.Enabled {
		if err := repository.Seed(ctx, db, logr); err != nil {
			logr.Sugar().Fatalw("failed to seed sample data", "error", err)
		}
	}

	metricsSvc := service.NewMetricsService()
	instituteRepo := repository.NewInstituteRepository(db, metricsSvc)
	eventRepo := repository.NewEventRepository(db, metricsSvc)

	instituteSvc := service.NewInstituteService(instituteRepo, logr)
	eventSvc := service.NewEventService(eventRepo, instituteRepo, nil, logr)
	authSvc := service.NewAuthService(service.NewJWTVerifier(cfg.Auth), logr)
	exportSvc := service.NewExportService(eventSvc, instituteSvc, logr)

	instituteHandler := handler.NewInstituteHandler(instituteSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	institutes := api.Group("/institutes")
	institutes.GET("", instituteHandler.List)
	institutes.GET("/search", instituteHandler.Search)
	institutes.GET("/stats", instituteHandler.Stats)
	if cfg.Export.Enabled {
		institutes.GET("/export", exportHandler.Institutes)
	}
	institutes.GET("/:id", instituteHandler.Get)
	institutes.GET("/:id/events", eventHandler.ByInstitute)

	events := api.Group("/events")
	events.GET("", eventHandler.List)
	events.POST("", eventHandler.Create)
	events.GET("/search", eventHandler.Search)
	events.GET("/upcoming", eventHandler.Upcoming)
	events.GET("/stats", eventHandler.Stats)
	if cfg.Export.Enabled {
		events.GET("/export", exportHandler.UpcomingEvents)
	}
	events.GET("/category/:category", eventHandler.ByCategory)
	events.GET("/:id", eventHandler.Get)
	events.PUT("/:id", eventHandler.Update)
	events.DELETE("/:id", eventHandler.Delete)

	auth := api.Group("/auth")
	auth.GET("/client-info", authHandler.ClientInfo)
	auth.GET("/me", middleware.RequirePrincipal(authSvc), authHandler.Me)
	auth.POST("/google", authHandler.Google)
	auth.POST("/validate", authHandler.Validate)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
