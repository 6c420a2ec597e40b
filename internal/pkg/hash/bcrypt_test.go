package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost, "pepper")

	hashed, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", string(hashed))

	assert.True(t, h.Verify(string(hashed), "secret123"))
	assert.False(t, h.Verify(string(hashed), "wrong-password"))

	// A hasher with a different pepper must not verify the same hash.
	other := NewBcrypt(bcrypt.MinCost, "another")
	assert.False(t, other.Verify(string(hashed), "secret123"))
}
