//go:build unit

package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psu6810110220/StoreGame/internal/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, password.ComparePassword(hash, "correct horse battery staple"))
	assert.Error(t, password.ComparePassword(hash, "wrong password"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.HashPassword("secret-password")
	require.NoError(t, err)
	second, err := password.HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
