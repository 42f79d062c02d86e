package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bab-insa-tournament/config"
	_ "bab-insa-tournament/docs" // Swagger docs
	"bab-insa-tournament/migrations"
	"bab-insa-tournament/packages/auth"
	authModels "bab-insa-tournament/packages/auth/models"
	"bab-insa-tournament/packages/core"
	"bab-insa-tournament/packages/core/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title           BAB-INSA Tournament API
// @version         1.0
// @description     Bracket generation for the BAB-INSA baby foot tournaments
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := config.NewLogger(cfg)
	defer logger.Sync()

	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if cfg.AutoMigrate {
		migrator, err := migrations.NewDefaultMigrator(db, logger)
		if err != nil {
			logger.Fatal("migrator setup failed", zap.Error(err))
		}
		if err := migrator.Migrate(); err != nil {
			logger.Fatal("migration failed", zap.Error(err))
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(config.RequestLogger(logger), config.Recovery(logger))
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	authModule := auth.NewModule(auth.Config{
		JWTSecret:         cfg.JWTSecret,
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
		TokenExpiry:       cfg.TokenExpiry,
	}, logger.Named("auth"))
	authModule.SetupRoutes(r)

	coreModule := core.NewModule(db, metrics.New(registry), logger, core.Options{
		BracketCron: cfg.BracketCron,
	})
	coreModule.SetupRoutes(r, authModule.JWTMiddleware(), auth.RequireRole(authModels.RoleAdmin))

	r.GET("/", rootHandler)
	r.GET("/health", healthHandler(db))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := coreModule.StartScheduler(); err != nil {
		logger.Fatal("scheduler failed to start", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	coreModule.StopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization", "X-Request-ID")
	c.ExposeHeaders = []string{"X-Request-ID"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// RootResponse represents the banner returned on /
type RootResponse struct {
	Message string `json:"message" example:"API is running"`
}

// @Summary API banner
// @Description Liveness banner
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{Message: "API is running"})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, HealthResponse{
				Message:  "Server is running",
				Database: "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, HealthResponse{
			Message:  "Server is running",
			Database: "connected",
		})
	}
}
