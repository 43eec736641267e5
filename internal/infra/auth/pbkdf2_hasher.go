// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"lazycook/config"
	"lazycook/internal/domain/service"
)

const (
	saltLength = 16
	keyLength  = 32

	// MinHashIterations is the floor for the PBKDF2 iteration count.
	// Configured values below it are raised to it.
	MinHashIterations = 100_000
)

// pbkdf2Hasher implements service.PasswordHasher with PBKDF2-HMAC-SHA256.
// The salt defeats precomputed dictionary attacks; the iteration count
// keeps brute force expensive while staying fast enough for interactive login.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher. The iteration
// count comes from config and is clamped to MinHashIterations.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := 0
	if cfg != nil && cfg.Auth != nil {
		iterations = cfg.Auth.HashIterations
	}
	if iterations < MinHashIterations {
		iterations = MinHashIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// NewPBKDF2HasherWithIterations builds a hasher with an explicit
// iteration count, still subject to the floor.
func NewPBKDF2HasherWithIterations(iterations int) service.PasswordHasher {
	if iterations < MinHashIterations {
		iterations = MinHashIterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Derive generates a fresh 16-byte salt and stretches the password into
// a 32-byte secret. Both are returned base64-encoded.
func (h *pbkdf2Hasher) Derive(password string) (string, string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)

	return base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
		nil
}

// Verify re-derives the secret from password and the stored salt with
// identical parameters and compares in constant time. Any decode
// failure reports false rather than an error.
func (h *pbkdf2Hasher) Verify(password, saltText, secretText string) bool {
	salt, err := base64.StdEncoding.DecodeString(saltText)
	if err != nil {
		return false
	}

	stored, err := base64.StdEncoding.DecodeString(secretText)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(derived, stored) == 1
}
