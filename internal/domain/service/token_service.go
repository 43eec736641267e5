package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the session tokens returned on login.
type TokenService interface {
	// GenerateAccessToken creates a signed token for the given account
	// and returns it together with its expiry.
	GenerateAccessToken(accountID uuid.UUID) (token string, expiresAt time.Time, err error)

	// ValidateAccessToken checks a token string and returns the parsed token.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)
}
