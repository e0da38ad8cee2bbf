package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, h.Verify("admin123", hash))
	assert.False(t, h.Verify("admin124", hash))
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("secret")
	require.NoError(t, err)
	b, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHasher_MalformedHashIsFalse(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("admin123", ""))
	assert.False(t, h.Verify("admin123", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("admin123", "$2b$12$short"))
}

func TestNewHasher_DefaultsOutOfRangeCost(t *testing.T) {
	assert.Equal(t, DefaultCost, NewHasher(0).Cost())
	assert.Equal(t, DefaultCost, NewHasher(99).Cost())
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).Cost())
}

func TestHasher_EmptyPasswordRejected(t *testing.T) {
	_, err := NewHasher(bcrypt.MinCost).Hash("")
	assert.Error(t, err)
}
