package token

import (
	"errors"
	"testing"
	"time"
)

const testTTL = 24 * time.Hour

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", testTTL)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tok, err := codec.Issue("acc-123", "a@x.com", "INVESTOR", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Verify(tok, now)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != "acc-123" {
		t.Fatalf("user id mismatch: got %q want %q", claims.UserID, "acc-123")
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "a@x.com")
	}
	if claims.Role != "INVESTOR" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "INVESTOR")
	}
}

func TestVerify_TTLBoundary(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", testTTL)
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tok, err := codec.Issue("acc-123", "a@x.com", "INVESTOR", issued)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// Just inside the window
	if _, err := codec.Verify(tok, issued.Add(testTTL-time.Second)); err != nil {
		t.Fatalf("expected token to be valid 1s before expiry, got %v", err)
	}

	// Just past the window
	_, err = codec.Verify(tok, issued.Add(testTTL+time.Second))
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tok, err := NewCodec("right-secret", testTTL).Issue("acc-1", "a@x.com", "ADMIN", now)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewCodec("wrong-secret", testTTL).Verify(tok, now)
	if !errors.Is(err, ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	codec := NewCodec("secret", testTTL)

	for _, raw := range []string{"", "not.a.jwt", "garbage"} {
		_, err := codec.Verify(raw, time.Now())
		if !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("Verify(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}
