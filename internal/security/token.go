package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const (
	sessionTokenBytes = 32
	resetTokenBytes   = 24
)

func randomToken(size int) (string, error) {
	raw := make([]byte, size)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// NewSessionToken returns an opaque url-safe session token.
func NewSessionToken() (string, error) {
	return randomToken(sessionTokenBytes)
}

// NewResetToken returns an opaque url-safe password-reset token.
func NewResetToken() (string, error) {
	return randomToken(resetTokenBytes)
}
