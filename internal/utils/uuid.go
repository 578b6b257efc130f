package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for runs and traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NormalizeUUID parses s and returns its canonical lowercase form.
// Vendor offer and currency ids are UUIDs sent in mixed case.
func NormalizeUUID(s string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return id.String(), nil
}
