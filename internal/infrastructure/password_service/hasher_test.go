package passwordservice_test

import (
	"testing"

	passwordservice "github.com/naolberhanu/LearnSphere/internal/infrastructure/password_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h := passwordservice.NewHasher()

	hash, err := h.HashPassword("Password123")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123", hash)

	// Same input, different salt, different hash.
	hash2, err := h.HashPassword("Password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestComparePasswordHash(t *testing.T) {
	h := passwordservice.NewHasher()

	hash, err := h.HashPassword("Password123")
	require.NoError(t, err)

	assert.NoError(t, h.ComparePasswordHash("Password123", hash))
	assert.Error(t, h.ComparePasswordHash("WrongPassword1", hash))
	assert.Error(t, h.ComparePasswordHash("Password123", "not-a-bcrypt-hash"))
}

func TestHashString(t *testing.T) {
	h := passwordservice.NewHasher()

	digest := h.HashString("123456")
	assert.NotEqual(t, "123456", digest)
	assert.Len(t, digest, 64) // hex-encoded sha256

	// Deterministic, unlike the password hash.
	assert.Equal(t, digest, h.HashString("123456"))
	assert.Empty(t, h.HashString(""))
}

func TestCheckHash(t *testing.T) {
	h := passwordservice.NewHasher()

	digest := h.HashString("raw-token")
	assert.True(t, h.CheckHash("raw-token", digest))
	assert.False(t, h.CheckHash("other-token", digest))
	assert.False(t, h.CheckHash("raw-token", ""))
}
