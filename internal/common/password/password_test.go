package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := New(&Config{Cost: bcrypt.MinCost})

	digest, err := h.Hash("dragon-slayer")
	require.NoError(t, err)
	assert.NotEqual(t, "dragon-slayer", digest)

	assert.True(t, h.Verify("dragon-slayer", digest))
	assert.False(t, h.Verify("wrong", digest))
	assert.False(t, h.Verify("dragon-slayer", ""))
}

func TestHashRejectsEmptySecret(t *testing.T) {
	_, err := New(nil).Hash("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestNewClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, New(&Config{Cost: 1}).cost)
	assert.Equal(t, bcrypt.DefaultCost, New(nil).cost)
}
