package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"investhub/internal/core/domain"
	"investhub/internal/pkg/response"
	"investhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(codec *token.Codec) *fiber.App {
	app := fiber.New()

	protected := app.Group("/api", AuthMiddleware(codec))
	protected.Get("/me", func(c *fiber.Ctx) error {
		id, _ := UserID(c)
		return response.Success(c, "OK", fiber.Map{"user_id": id})
	})

	admin := protected.Group("/admin", AdminOnly())
	admin.Get("/users", func(c *fiber.Ctx) error {
		return response.Success(c, "OK", nil)
	})

	return app
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Hour)
	app := newProtectedApp(codec)

	req := httptest.NewRequest("GET", "/api/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.False(t, body.Success)
	require.Equal(t, "Access token required", body.Message)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Hour)
	app := newProtectedApp(codec)

	bearer, err := codec.Issue("acc-1", "a@x.com", string(domain.RoleInvestor), time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Access token expired", body.Message)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Hour)
	app := newProtectedApp(codec)

	forged, err := token.NewCodec("other-secret", time.Hour).Issue("acc-1", "a@x.com", "ADMIN", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+forged)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Invalid access token", body.Message)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Hour)
	app := newProtectedApp(codec)

	bearer, err := codec.Issue("acc-7", "a@x.com", string(domain.RoleInvestor), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "acc-7", data["user_id"])
}

func TestAdminOnly_RejectsInvestor(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Hour)
	app := newProtectedApp(codec)

	bearer, err := codec.Issue("acc-7", "a@x.com", string(domain.RoleInvestor), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	codec := token.NewCodec("mw-secret", time.Hour)
	app := newProtectedApp(codec)

	bearer, err := codec.Issue("acc-1", "admin@x.com", string(domain.RoleAdmin), time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/admin/users", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
