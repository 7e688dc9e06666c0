package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

func TestCompareHashAndPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, CompareHashAndPassword(hash, "password123"))
	assert.False(t, CompareHashAndPassword(hash, "password124"))
	assert.False(t, CompareHashAndPassword("not-a-hash", "password123"))
}

func TestHashPassword_LongPasswords(t *testing.T) {
	// bcrypt caps input at 72 bytes; anything up to the API's 255-char
	// limit must still hash and verify instead of erroring out.
	long := strings.Repeat("a", 100)

	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CompareHashAndPassword(hash, long))

	// Only the first 72 bytes are keyed on, so a password differing
	// beyond that boundary compares equal...
	assert.True(t, CompareHashAndPassword(hash, long[:72]+"different tail"))
	// ...while one differing inside it does not.
	assert.False(t, CompareHashAndPassword(hash, "b"+long[1:]))

	max, err := HashPassword(strings.Repeat("x", 255))
	require.NoError(t, err)
	assert.True(t, CompareHashAndPassword(max, strings.Repeat("x", 255)))
}
