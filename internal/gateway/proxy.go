package gateway

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
)

// NewProxy returns a catch-all handler forwarding every request to the
// identity service, preserving method, path, query and body
func NewProxy(target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := proxy.Do(c, target+c.OriginalURL()); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Upstream service unavailable")
		}
		c.Response().Header.Del(fiber.HeaderServer)
		return nil
	}
}

// Health reports gateway liveness
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "UP",
		"service":   "api-gateway",
		"timestamp": time.Now().UnixMilli(),
	})
}

// Info returns gateway metadata
func Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":        "API Gateway",
		"version":     "1.0.0",
		"description": "InvestHub API Gateway with bearer token authentication",
	})
}
