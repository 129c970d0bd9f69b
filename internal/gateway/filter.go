// Package gateway implements the edge authentication filter and the
// reverse proxy in front of the identity service.
package gateway

import (
	"errors"
	"strings"
	"time"

	"investhub/internal/adapters/http/middleware"
	"investhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// Action is the outcome of a filter decision
type Action int

const (
	// ActionForward passes the request through untouched
	ActionForward Action = iota
	// ActionReject stops the request with an error response
	ActionReject
	// ActionForwardWithIdentity passes the request through with the
	// verified subject identifier injected as a forwarding header
	ActionForwardWithIdentity
)

// Decision is the result of running the filter against one request
type Decision struct {
	Action  Action
	Status  int
	Message string
	UserID  string
}

// ErrorBody is the gateway's rejection payload
type ErrorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// AuthFilter decides per request whether to pass unauthenticated,
// reject, or verify-and-annotate. It holds no state across requests
// and never consults account storage: a structurally valid, unexpired
// token is trusted even if the account changed after issuance.
type AuthFilter struct {
	codec          *token.Codec
	publicPrefixes []string
}

// NewAuthFilter creates an auth filter with the given codec and set of
// path prefixes that bypass authentication
func NewAuthFilter(codec *token.Codec, publicPrefixes []string) *AuthFilter {
	return &AuthFilter{
		codec:          codec,
		publicPrefixes: publicPrefixes,
	}
}

// Decide runs the decision pipeline for a single request. Pure
// function of its inputs plus the filter's configuration.
func (f *AuthFilter) Decide(path, authHeader string, now time.Time) Decision {
	if f.isPublic(path) {
		return Decision{Action: ActionForward}
	}

	if authHeader == "" {
		return reject("Missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return reject("Invalid authorization header")
	}

	claims, err := f.codec.Verify(strings.TrimPrefix(authHeader, "Bearer "), now)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenExpired):
			return reject("Token has expired")
		case errors.Is(err, token.ErrTokenSignature):
			return reject("Invalid token signature")
		default:
			return reject("Malformed token")
		}
	}

	return Decision{
		Action: ActionForwardWithIdentity,
		UserID: claims.UserID,
	}
}

// Handler adapts the decision pipeline to a fiber middleware
func (f *AuthFilter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := f.Decide(c.Path(), c.Get(fiber.HeaderAuthorization), time.Now())

		switch decision.Action {
		case ActionReject:
			return c.Status(decision.Status).JSON(ErrorBody{
				Error:  decision.Message,
				Status: decision.Status,
			})
		case ActionForwardWithIdentity:
			c.Request().Header.Set(middleware.IdentityHeader, decision.UserID)
		}

		return c.Next()
	}
}

func (f *AuthFilter) isPublic(path string) bool {
	for _, prefix := range f.publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func reject(message string) Decision {
	return Decision{
		Action:  ActionReject,
		Status:  fiber.StatusUnauthorized,
		Message: message,
	}
}
