// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lazycook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches a lookup.
// A miss is a normal outcome, not a storage fault.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByEmail retrieves a single account by its exact, case-sensitive email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// EmailExists reports whether an account with the exact email exists.
	EmailExists(ctx context.Context, email string) (bool, error)

	// Create persists a new account. A duplicate email surfaces as
	// domainerrors.ErrEmailAlreadyRegistered.
	Create(ctx context.Context, account *entity.Account) error

	// Delete removes an account; dependent profile rows cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
