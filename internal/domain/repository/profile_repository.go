package repository

import (
	"context"
	"errors"

	"lazycook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile matches a lookup.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines operations for the user profiles bound to accounts.
type ProfileRepository interface {
	// Create persists a new profile. A duplicate display name surfaces
	// as domainerrors.ErrProfileNameTaken.
	Create(ctx context.Context, profile *entity.Profile) error

	// FindByAccountID retrieves the profile owned by the given account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)
}
