package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndVerifyAccessToken(t *testing.T) {
	m := NewManager("test-secret", 24*time.Hour)

	token, err := m.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := m.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}

	if claims.User.ID != "user-123" {
		t.Fatalf("expected user id user-123, got %s", claims.User.ID)
	}

	if claims.Subject != "user-123" {
		t.Fatalf("expected subject user-123, got %s", claims.Subject)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := m.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, err = other.VerifyAccessToken(token)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyAccessToken_Tampered(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}

	// flip the signature
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = m.VerifyAccessToken(tampered)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-123")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	_, err = m.VerifyAccessToken(token)
	if err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyAccessToken_WrongSigningMethod(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	// unsigned token should never verify
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user": map[string]any{"id": "user-123"},
	})

	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = m.VerifyAccessToken(raw)
	if err == nil {
		t.Fatalf("expected error for alg=none token")
	}
}

func TestVerifyAccessToken_MissingUserClaim(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	raw, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = m.VerifyAccessToken(raw)
	if err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for missing user claim, got %v", err)
	}
}
