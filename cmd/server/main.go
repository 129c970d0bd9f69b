package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"investhub/internal/adapters/http/middleware"
	"investhub/internal/adapters/http/routes"
	"investhub/internal/adapters/persistence/models"
	"investhub/internal/config"

	"github.com/gofiber/fiber/v2"

	_ "investhub/docs" // Swagger docs
)

// @title InvestHub Identity Service API
// @version 1.0
// @description Account lifecycle and authentication service for the InvestHub platform.

// @contact.name API Support
// @contact.email support@investhub.local

// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin account
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "InvestHub Identity Service v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (returns the cleanup scheduler)
	cleanupService := routes.Setup(app, db, cfg)
	cleanupService.Start()
	defer cleanupService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Identity service starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
