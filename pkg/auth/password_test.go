package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakerydir/pkg/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.True(t, auth.CheckPassword(hash, "hunter2"))
	assert.False(t, auth.CheckPassword(hash, "hunter3"))
}

func TestHashPassword_SaltedPerHash(t *testing.T) {
	first, err := auth.HashPassword("same-password")
	require.NoError(t, err)
	second, err := auth.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
