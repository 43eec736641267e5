// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher derives and verifies stored password secrets.
// This abstracts the underlying key-derivation scheme, keeping the domain pure.
type PasswordHasher interface {
	// Derive generates a fresh random salt and stretches the password
	// into a derived secret. Both return values are text-safe (base64).
	// Two calls with the same password must yield different salts and
	// therefore different secrets.
	Derive(password string) (salt string, secret string, err error)

	// Verify re-derives the secret from password and the stored salt
	// and compares it against the stored secret in constant time.
	// It never fails: any decode error or mismatch reports false.
	Verify(password, salt, secret string) bool
}
