package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	password := "admin123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password matches.
	assert.True(t, hasher.Check(password, hash))

	// Wrong password, empty password, and garbage hash all fail.
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	first, err := hasher.Hash("admin123")
	assert.NoError(t, err)
	second, err := hasher.Hash("admin123")
	assert.NoError(t, err)

	// bcrypt salts per call, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("admin123", first))
	assert.True(t, hasher.Check("admin123", second))
}
