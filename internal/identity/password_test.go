package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Verify("correct horse battery staple", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestBcryptHasher_SamePasswordDifferentHashes(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("pw1")
	require.NoError(t, err)
	second, err := hasher.Hash("pw1")
	require.NoError(t, err)

	// Salted: equal plaintexts must not produce equal stored values.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("pw1", first))
	assert.True(t, hasher.Verify("pw1", second))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99)

	hash, err := hasher.Hash("pw1")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("pw1", hash))
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	assert.False(t, hasher.Verify("pw1", "not-a-bcrypt-hash"))
}
