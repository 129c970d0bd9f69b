package gateway

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"investhub/internal/adapters/http/middleware"
	"investhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

var testPublicPrefixes = []string{"/api/auth", "/api/gateway", "/swagger", "/health"}

func newTestFilter() (*AuthFilter, *token.Codec, time.Time) {
	codec := token.NewCodec("gateway-secret", 24*time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewAuthFilter(codec, testPublicPrefixes), codec, now
}

func TestDecide_PublicPathsBypassAuth(t *testing.T) {
	filter, _, now := newTestFilter()

	for _, path := range []string{
		"/api/auth/login",
		"/api/auth/register",
		"/api/gateway/health",
		"/swagger/index.html",
		"/health",
	} {
		decision := filter.Decide(path, "", now)
		require.Equal(t, ActionForward, decision.Action, "path %s should be public", path)
	}
}

func TestDecide_MissingHeader(t *testing.T) {
	filter, _, now := newTestFilter()

	decision := filter.Decide("/api/users/me", "", now)
	require.Equal(t, ActionReject, decision.Action)
	require.Equal(t, fiber.StatusUnauthorized, decision.Status)
	require.Equal(t, "Missing authorization header", decision.Message)
}

func TestDecide_NonBearerScheme(t *testing.T) {
	filter, _, now := newTestFilter()

	for _, header := range []string{"Basic dXNlcjpwYXNz", "bearer lowercase", "Token abc"} {
		decision := filter.Decide("/api/users/me", header, now)
		require.Equal(t, ActionReject, decision.Action)
		require.Equal(t, "Invalid authorization header", decision.Message)
	}
}

func TestDecide_ValidToken(t *testing.T) {
	filter, codec, now := newTestFilter()

	bearer, err := codec.Issue("acc-42", "a@x.com", "INVESTOR", now)
	require.NoError(t, err)

	decision := filter.Decide("/api/users/me", "Bearer "+bearer, now)
	require.Equal(t, ActionForwardWithIdentity, decision.Action)
	require.Equal(t, "acc-42", decision.UserID)
}

func TestDecide_ExpiredToken(t *testing.T) {
	filter, codec, now := newTestFilter()

	bearer, err := codec.Issue("acc-42", "a@x.com", "INVESTOR", now)
	require.NoError(t, err)

	decision := filter.Decide("/api/users/me", "Bearer "+bearer, now.Add(25*time.Hour))
	require.Equal(t, ActionReject, decision.Action)
	require.Equal(t, "Token has expired", decision.Message)
}

func TestDecide_WrongSignature(t *testing.T) {
	filter, _, now := newTestFilter()

	forged, err := token.NewCodec("other-secret", 24*time.Hour).Issue("acc-42", "a@x.com", "ADMIN", now)
	require.NoError(t, err)

	decision := filter.Decide("/api/users/me", "Bearer "+forged, now)
	require.Equal(t, ActionReject, decision.Action)
	require.Equal(t, "Invalid token signature", decision.Message)
}

func TestDecide_MalformedToken(t *testing.T) {
	filter, _, now := newTestFilter()

	decision := filter.Decide("/api/users/me", "Bearer not.a.jwt", now)
	require.Equal(t, ActionReject, decision.Action)
	require.Equal(t, "Malformed token", decision.Message)
}

func newTestApp(filter *AuthFilter) *fiber.App {
	app := fiber.New()
	app.Use(filter.Handler())
	app.All("/*", func(c *fiber.Ctx) error {
		return c.SendString(c.Get(middleware.IdentityHeader))
	})
	return app
}

func TestHandler_RejectionBody(t *testing.T) {
	filter, _, _ := newTestFilter()
	app := newTestApp(filter)

	req := httptest.NewRequest("GET", "/api/users/me", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"Missing authorization header","status":401}`, string(body))
}

func TestHandler_InjectsIdentityHeader(t *testing.T) {
	filter, codec, _ := newTestFilter()
	app := newTestApp(filter)

	bearer, err := codec.Issue("acc-42", "a@x.com", "INVESTOR", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "acc-42", string(body))
}

func TestHandler_PublicPathPassesThrough(t *testing.T) {
	filter, _, _ := newTestFilter()
	app := newTestApp(filter)

	req := httptest.NewRequest("POST", "/api/auth/login", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
