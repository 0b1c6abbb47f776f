package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("milk123", 4)
	require.NoError(t, err)
	require.NotEqual(t, "milk123", hash)

	assert.True(t, VerifyPassword(hash, "milk123"))
	assert.False(t, VerifyPassword(hash, "Milk123"))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestVerifyPasswordBadHash(t *testing.T) {
	assert.False(t, VerifyPassword("not-a-bcrypt-hash", "milk123"))
}
