// password_test.go - Tests for password hashing and verification

package auth

import (
	"testing" // Go's testing package

	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For fatal assertions
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, Hash("secret"), hash)

	// Hashing the same password twice yields different salted digests
	other, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerify(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, hash.Verify("secret"))
	assert.False(t, hash.Verify("wrong"))
	assert.False(t, Hash("not a bcrypt digest").Verify("secret"))
}
