package auth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazycook/config"
)

func TestPBKDF2Hasher_DeriveProducesUniqueSalts(t *testing.T) {
	hasher := NewPBKDF2HasherWithIterations(MinHashIterations)

	saltA, secretA, err := hasher.Derive("geheim123")
	require.NoError(t, err)
	saltB, secretB, err := hasher.Derive("geheim123")
	require.NoError(t, err)

	// Same password, fresh salt every call, so the stored secrets differ too.
	assert.NotEqual(t, saltA, saltB)
	assert.NotEqual(t, secretA, secretB)

	rawSalt, err := base64.StdEncoding.DecodeString(saltA)
	require.NoError(t, err)
	assert.Len(t, rawSalt, 16)

	rawSecret, err := base64.StdEncoding.DecodeString(secretA)
	require.NoError(t, err)
	assert.Len(t, rawSecret, 32)
}

func TestPBKDF2Hasher_VerifyRoundTrip(t *testing.T) {
	hasher := NewPBKDF2HasherWithIterations(MinHashIterations)

	salt, secret, err := hasher.Derive("meinpasswort")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("meinpasswort", salt, secret))
	assert.False(t, hasher.Verify("falsch123", salt, secret))
	assert.False(t, hasher.Verify("", salt, secret))
}

func TestPBKDF2Hasher_VerifyRejectsTamperedInputs(t *testing.T) {
	hasher := NewPBKDF2HasherWithIterations(MinHashIterations)

	salt, secret, err := hasher.Derive("meinpasswort")
	require.NoError(t, err)

	otherSalt, otherSecret, err := hasher.Derive("meinpasswort")
	require.NoError(t, err)

	// Swapping in a foreign salt or secret must fail verification.
	assert.False(t, hasher.Verify("meinpasswort", otherSalt, secret))
	assert.False(t, hasher.Verify("meinpasswort", salt, otherSecret))

	// Undecodable stored values report false, never an error.
	assert.False(t, hasher.Verify("meinpasswort", "not base64!!", secret))
	assert.False(t, hasher.Verify("meinpasswort", salt, "not base64!!"))
}

func TestNewPBKDF2Hasher_ClampsIterationFloor(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{HashIterations: 1}}

	hasher := NewPBKDF2Hasher(cfg)
	impl, ok := hasher.(*pbkdf2Hasher)
	require.True(t, ok)
	assert.Equal(t, MinHashIterations, impl.iterations)

	// Nil auth section falls back to the floor as well.
	hasher = NewPBKDF2Hasher(&config.Config{})
	impl, ok = hasher.(*pbkdf2Hasher)
	require.True(t, ok)
	assert.Equal(t, MinHashIterations, impl.iterations)
}
