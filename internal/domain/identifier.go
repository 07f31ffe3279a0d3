package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidIdentifier is returned when an identifier cannot be parsed from input.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// NewIdentifier generates a fresh lower-cased identifier token.
func NewIdentifier() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NormalizeIdentifier trims and lower-cases an externally supplied identifier.
func NormalizeIdentifier(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseIdentifier normalizes raw and rejects blank input.
func ParseIdentifier(raw string) (string, error) {
	id := NormalizeIdentifier(raw)
	if id == "" {
		return "", ErrInvalidIdentifier
	}
	return id, nil
}
