package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"investhub/internal/config"
	"investhub/internal/gateway"
	"investhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Token codec shares the identity service's signing key
	codec := token.NewCodec(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	app := fiber.New(fiber.Config{
		AppName: "InvestHub API Gateway v1.0",
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.GetAllowedOrigins(),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Gateway's own endpoints
	app.Get("/api/gateway/health", gateway.Health)
	app.Get("/api/gateway/info", gateway.Info)

	// Authentication filter, then proxy everything else downstream
	filter := gateway.NewAuthFilter(codec, cfg.Gateway.PublicPrefixes)
	app.Use(filter.Handler())
	app.Use(gateway.NewProxy(cfg.Gateway.UserServiceURL))

	// Graceful shutdown
	go gracefulShutdown(app)

	log.Printf("🚀 API gateway starting on port %s → %s [MODE: %s]",
		cfg.Gateway.Port, cfg.Gateway.UserServiceURL, cfg.AppMode)
	if err := app.Listen(":" + cfg.Gateway.Port); err != nil {
		log.Fatalf("❌ Failed to start gateway: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down gateway...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Gateway stopped gracefully")
}
