// Package service provides hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Derive(password string) (string, string, error) {
	args := m.Called(password)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockPasswordHasher) Verify(password, salt, secret string) bool {
	args := m.Called(password, salt, secret)

	return args.Bool(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(accountID uuid.UUID) (string, time.Time, error) {
	args := m.Called(accountID)

	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*jwt.Token), args.Error(1)
}
