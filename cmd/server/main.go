package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/imovia/api/internal/auth"
	"github.com/imovia/api/internal/config"
	"github.com/imovia/api/internal/database"
	"github.com/imovia/api/internal/handlers"
	"github.com/imovia/api/internal/logger"
	"github.com/imovia/api/internal/middleware"
	"github.com/imovia/api/internal/repository"
	"github.com/imovia/api/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting Imovia API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Run schema migrations
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Failed to run migrations", err, nil)
	}

	// Seed the bootstrap principal admin if no principal admin exists yet
	bootstrapHash, err := auth.HashPassword(cfg.Auth.BootstrapPassword)
	if err != nil {
		log.Fatal("Failed to hash bootstrap password", err, nil)
	}
	if err := db.SeedPrincipalAdmin(ctx, cfg.Auth.BootstrapUsername, bootstrapHash, cfg.Auth.BootstrapFullName); err != nil {
		log.Fatal("Failed to seed principal admin", err, map[string]interface{}{
			"username": cfg.Auth.BootstrapUsername,
		})
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	propertyRepo := repository.NewPropertyRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	propertyService := services.NewPropertyService(propertyRepo, log)
	userService := services.NewUserService(userRepo, log)
	authService := services.NewAuthService(userRepo, issuer, log)
	settingsService := services.NewSettingsService(settingsRepo, log)
	dataService := services.NewDataService(propertyRepo, userRepo, settingsService, log)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	dataHandler := handlers.NewDataHandler(dataService)
	userLoader := handlers.NewUserLoader(userRepo)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/properties", propertyHandler.Search)
		v1.GET("/properties/featured", propertyHandler.Featured)
		v1.GET("/properties/:id", propertyHandler.Get)
		v1.GET("/settings", settingsHandler.Get)
		v1.GET("/data", middleware.OptionalAuth(issuer, userLoader), dataHandler.Snapshot)

		authed := v1.Group("")
		authed.Use(middleware.RequireAuth(issuer, userLoader))
		{
			authed.GET("/admin/properties", propertyHandler.AdminList)
			authed.POST("/properties", propertyHandler.Create)
			authed.PUT("/properties/:id", propertyHandler.Update)
			authed.DELETE("/properties/:id", propertyHandler.Delete)
			authed.POST("/properties/:id/feature", propertyHandler.ToggleFeatured)

			authed.GET("/users", userHandler.List)
			authed.GET("/users/capabilities", userHandler.FormCapabilities)
			authed.POST("/users", userHandler.Create)
			authed.PUT("/users/:id", userHandler.Update)
			authed.DELETE("/users/:id", userHandler.Delete)

			authed.PUT("/settings", settingsHandler.Update)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
