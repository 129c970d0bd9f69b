package middleware

import (
	"errors"
	"strings"
	"time"

	"investhub/internal/core/domain"
	"investhub/internal/pkg/response"
	"investhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// Context keys set by AuthMiddleware
const (
	LocalUserID = "userID"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// IdentityHeader is the forwarding header the gateway injects after
// verifying a bearer token
const IdentityHeader = "X-User-Id"

// AuthMiddleware verifies the bearer token and stores the embedded
// identity claims in the request context. The token is trusted in
// isolation — no account lookup happens here.
func AuthMiddleware(codec *token.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := codec.Verify(strings.TrimPrefix(authHeader, "Bearer "), time.Now())
		if err != nil {
			if errors.Is(err, token.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		role := domain.Role(claims.Role)
		if !role.IsValid() {
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, role)

		return c.Next()
	}
}

// RequireRole authorizes the request iff the verified identity carries
// one of the allowed roles
func RequireRole(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(domain.Role)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the ADMIN role
func AdminOnly() fiber.Handler {
	return RequireRole(domain.RoleAdmin)
}

// UserID returns the verified subject identifier from the request
// context
func UserID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(LocalUserID).(string)
	return id, ok && id != ""
}
