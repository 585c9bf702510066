package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(4) // MinCost keeps the test fast

	digest, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", digest, "digest must never equal the plaintext")
	assert.True(t, strings.HasPrefix(digest, "$2"), "expected a bcrypt digest")

	assert.True(t, h.Verify("secret1", digest))
	assert.False(t, h.Verify("secret2", digest))
	assert.False(t, h.Verify("", digest))
}

func TestBcryptHasher_DigestsAreSalted(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two digests of the same password must differ")
	assert.True(t, h.Verify("secret1", first))
	assert.True(t, h.Verify("secret1", second))
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(0)

	assert.False(t, h.Verify("secret1", "not-a-bcrypt-digest"))
}
