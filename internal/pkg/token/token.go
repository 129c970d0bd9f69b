// Package token implements the bearer token codec shared by the
// identity service and the API gateway. Tokens are self-contained:
// validity is fully determined by signature and expiry, no storage
// lookup happens here.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
)

const issuer = "investhub"

// Claims represents the JWT claims carried by a bearer token
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies bearer tokens. The signing key and TTL are
// injected once at construction and never change at runtime.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a codec with the given signing secret and token TTL
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the fixed validity window of issued tokens
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue produces a signed token asserting the given identity.
// Claims are {user_id, email, role, iat=now, exp=now+TTL}.
func (c *Codec) Issue(userID, email, role string, now time.Time) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   userID,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify parses and validates a token against the codec's key at the
// given instant. It returns the embedded claims unchanged on success.
// Failures map to ErrTokenMalformed, ErrTokenSignature or
// ErrTokenExpired.
func (c *Codec) Verify(raw string, now time.Time) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	tok, err := parser.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
