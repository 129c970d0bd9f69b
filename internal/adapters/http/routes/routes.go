package routes

import (
	"time"

	"investhub/internal/adapters/http/handlers"
	"investhub/internal/adapters/http/middleware"
	"investhub/internal/adapters/persistence/repositories"
	"investhub/internal/config"
	"investhub/internal/core/services"
	"investhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the identity service
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) *services.CleanupService {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)

	// Token codec: process-wide signing key, fixed TTL
	codec := token.NewCodec(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	// Initialize services
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(accountRepo, emailService, codec)
	userService := services.NewUserService(accountRepo, emailService)
	cleanupService := services.NewCleanupService(accountRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(userService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")

	// Auth routes (public, stricter rate limit)
	auth := api.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Get("/activate", authHandler.Activate)
	auth.Post("/resend-activation", middleware.AuthRateLimiter(), authHandler.ResendActivation)

	// User routes (authenticated)
	users := api.Group("/users", middleware.AuthMiddleware(codec))
	users.Get("/me", userHandler.Me)
	users.Get("/validate-token", userHandler.ValidateToken)
	users.Put("/profile", userHandler.UpdateProfile)

	// Admin routes (ADMIN role only)
	admin := api.Group("/admin/users", middleware.AuthMiddleware(codec), middleware.AdminOnly())
	admin.Post("/", adminHandler.CreateAccount)
	admin.Get("/", adminHandler.ListAccounts)
	admin.Get("/:id", adminHandler.GetAccount)
	admin.Delete("/:id", adminHandler.DeleteAccount)
	admin.Post("/:id/restore", adminHandler.RestoreAccount)

	return cleanupService
}
