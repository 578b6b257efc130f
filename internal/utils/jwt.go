package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no "sub" claim.
var ErrEmptySubject = errors.New("empty subject")

// TokenClaims is the subset of a third-party access token this service reads.
type TokenClaims struct {
	Subject string
}

// ParseTokenClaims extracts the subject from a JWT without
// verifying its signature. The tokens inspected here are issued by the game
// vendor, whose signing keys are not available, and are only ever forwarded
// back to the vendor.
//
// Returns an error if the token is malformed or has no subject.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(tokenString), jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("read subject: %w", err)
	}
	if sub == "" {
		return TokenClaims{}, ErrEmptySubject
	}

	return TokenClaims{Subject: sub}, nil
}
