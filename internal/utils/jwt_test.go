package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("vendor-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestParseTokenClaims_Success(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "6e5f1c1a-puuid", "exp": time.Now().Add(time.Hour).Unix()})

	claims, err := ParseTokenClaims(raw)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Subject != "6e5f1c1a-puuid" {
		t.Errorf("expected subject '6e5f1c1a-puuid', got '%s'", claims.Subject)
	}
}

func TestParseTokenClaims_ExpiredTokenStillReadable(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "puuid", "exp": time.Now().Add(-time.Hour).Unix()})

	claims, err := ParseTokenClaims(raw)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if claims.Subject != "puuid" {
		t.Errorf("expected subject 'puuid', got '%s'", claims.Subject)
	}
}

func TestParseTokenClaims_EmptySubject(t *testing.T) {
	_, err := ParseTokenClaims(signedToken(t, jwt.MapClaims{"exp": time.Now().Unix()}))

	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestParseTokenClaims_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseTokenClaims(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
