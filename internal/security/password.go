package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength       = 16
	pbkdf2Iterations = 100000
	hashLength       = sha256.Size
)

// GenerateSalt returns a fresh random salt for password hashing.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// HashPassword derives a PBKDF2-HMAC-SHA256 hash of the password.
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, hashLength, sha256.New)
}

// EncodeB64 encodes raw bytes for storage alongside the credential.
func EncodeB64(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeB64 decodes a stored base64 value.
func DecodeB64(value string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(value)
}

// VerifyPassword checks a password against a stored salt and hash, both
// base64-encoded. The comparison is constant-time.
func VerifyPassword(password, saltB64, hashB64 string) bool {
	salt, err := DecodeB64(saltB64)
	if err != nil {
		return false
	}
	expected, err := DecodeB64(hashB64)
	if err != nil {
		return false
	}
	actual := HashPassword(password, salt)
	return hmac.Equal(actual, expected)
}
