// Dashboard backend API server.
//
//	@title			Dashboard Backend API
//	@version		1.0
//	@description	User dashboard with registration, roles, message walls, and comments.
//	@BasePath		/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/userdash/dashboard-backend/docs"
	httphandlers "github.com/userdash/dashboard-backend/internal/handlers/http"
	"github.com/userdash/dashboard-backend/internal/handlers/middleware"
	"github.com/userdash/dashboard-backend/internal/infrastructure/auth"
	"github.com/userdash/dashboard-backend/internal/infrastructure/config"
	"github.com/userdash/dashboard-backend/internal/infrastructure/i18n"
	"github.com/userdash/dashboard-backend/internal/infrastructure/logging"
	"github.com/userdash/dashboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/userdash/dashboard-backend/internal/infrastructure/security"
	"github.com/userdash/dashboard-backend/internal/realtime"
	"github.com/userdash/dashboard-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting dashboard backend",
		"env", cfg.Env,
		"version", "dev",
	)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	i18nService, err := i18n.NewService(cfg.Auth.LocalesDir, cfg.Auth.DefaultLang)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Repositories and infrastructure services
	userRepo := postgres.NewUserRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	uow := postgres.NewUnitOfWork(db)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	hub := realtime.NewHub(logger)

	// Core services
	userService := services.NewUserService(userRepo, uow, hasher, logger)
	authService := services.NewAuthService(userRepo, hasher, logger)
	messageService := services.NewMessageService(userRepo, messageRepo, commentRepo, hub, logger)

	// Handlers
	authHandler := httphandlers.NewAuthHandler(userService, authService, tokens)
	userHandler := httphandlers.NewUserHandler(userService)
	messageHandler := httphandlers.NewMessageHandler(messageService)
	wsHandler := httphandlers.NewWSHandler(hub, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Base URL for RFC 7807 problem type URIs
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.RequireAuth(tokens)

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", requireAuth, authHandler.Logout)
		}

		users := v1.Group("/users", requireAuth)
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/me/profile", userHandler.UpdateProfile)
			users.PUT("/me/password", userHandler.UpdatePassword)
			users.PUT("/me/description", userHandler.UpdateDescription)

			users.GET("/:id/messages", messageHandler.Wall)
			users.POST("/:id/messages", messageHandler.SendMessage)
			users.POST("/:id/messages/:messageID/comments", messageHandler.PostComment)

			admin := users.Group("", middleware.AdminOnly())
			{
				admin.POST("", userHandler.CreateUser)
				admin.PUT("/:id", userHandler.AdminUpdateUser)
				admin.PUT("/:id/password", userHandler.AdminUpdatePassword)
				admin.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		v1.GET("/ws", requireAuth, wsHandler.Feed)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
