package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenSource_Generate(t *testing.T) {
	source := NewSessionTokenSource()

	raw, hash, err := source.Generate()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, raw, hash)

	// Hashing the raw token again reproduces the stored fingerprint.
	assert.Equal(t, hash, source.Hash(raw))

	// Tokens are unique per call.
	raw2, hash2, err := source.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
	assert.NotEqual(t, hash, hash2)
}
