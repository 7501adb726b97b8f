package cryptography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPepperedHashRoundTrip(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "test-pepper")
	InitialiseHasher()

	hash, err := HashPassword("Aa1!aaaa")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(string(hash), "Aa1!aaaa"))
	assert.False(t, VerifyPassword(string(hash), "Aa1!aaab"))
}

func TestPepperChangesHashInput(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "pepper-one")
	InitialiseHasher()
	hash, err := HashPassword("Aa1!aaaa")
	require.NoError(t, err)

	// Same candidate no longer verifies once the pepper differs.
	t.Setenv("PASSWORD_PEPPER", "pepper-two")
	InitialiseHasher()
	assert.False(t, VerifyPassword(string(hash), "Aa1!aaaa"))
}

func TestMissingPepperIsFatal(t *testing.T) {
	t.Setenv("PASSWORD_PEPPER", "")
	assert.Panics(t, func() { InitialiseHasher() })
}
