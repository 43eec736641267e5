// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"lazycook/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterOutcome is the closed set of registration results. Expected
// conditions are values, not errors; storage faults collapse into
// RegisterFailed with the detail kept in the logs.
type RegisterOutcome string

const (
	RegisterSucceeded    RegisterOutcome = "succeeded"
	RegisterEmailTaken   RegisterOutcome = "email_already_registered"
	RegisterInvalidInput RegisterOutcome = "invalid_input"
	RegisterFailed       RegisterOutcome = "failed"
)

// AuthOutcome is the closed set of login results. The service keeps the
// unknown-email / wrong-password distinction the product surfaces in
// its messages; unexpected faults collapse into AuthFailed.
type AuthOutcome string

const (
	AuthSucceeded     AuthOutcome = "succeeded"
	AuthNoSuchAccount AuthOutcome = "no_such_account"
	AuthWrongPassword AuthOutcome = "wrong_password"
	AuthFailed        AuthOutcome = "failed"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Name is the optional display name for the profile row; when empty the
// service derives one from the email.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterResult carries the outcome plus, on success, the created account.
type RegisterResult struct {
	Outcome RegisterOutcome
	Account *entity.Account
	Profile *entity.Profile
}

// AuthResult carries the outcome plus, on success, the session token.
type AuthResult struct {
	Outcome     AuthOutcome
	AccessToken string
	ExpiresAt   time.Time
}

// AccountUsecase defines the account operations exposed to the delivery layer.
type AccountUsecase interface {
	// Register creates an account and its profile row atomically.
	Register(ctx context.Context, input *RegisterInput) *RegisterResult

	// Authenticate verifies credentials and issues a session token.
	Authenticate(ctx context.Context, input *LoginInput) *AuthResult

	// Profile retrieves the profile owned by the given account.
	Profile(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
}
