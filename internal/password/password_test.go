package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secret123")

	assert.True(t, Verify("secret123", hash))
	assert.False(t, Verify("secret124", hash))
}

func TestHash_RandomSalt(t *testing.T) {
	t.Parallel()

	h1, err := Hash("same-password")
	require.NoError(t, err)
	h2, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	assert.False(t, Verify("anything", ""))
	assert.False(t, Verify("anything", "no-separator"))
	assert.False(t, Verify("anything", "!!!:???"))
}
