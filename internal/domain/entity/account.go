// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a login identity: an email paired with a salted, stretched
// password secret. It never carries the plaintext password.
type Account struct {
	ID           uuid.UUID // Surrogate key for the account.
	Email        string    // Login identifier, unique and case-sensitive as stored.
	PasswordHash string    // Base64 of the PBKDF2-derived secret.
	Salt         string    // Base64 of the per-account random salt, never reused.
	CreatedAt    time.Time
}

// Profile is the named user profile bound to exactly one account.
// Deleting the account deletes the profile.
type Profile struct {
	ID        uuid.UUID
	Name      string    // Unique display name.
	AccountID uuid.UUID // Owning account.
	CreatedAt time.Time
}
