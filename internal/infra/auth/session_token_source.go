package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"

	"storefront/internal/domain/service"
)

// sessionTokenBytes is the entropy of a raw session token before encoding.
const sessionTokenBytes = 32

// randomTokenSource mints opaque session tokens from crypto/rand and
// fingerprints them with SHA-256. The raw token is what the cookie carries;
// the database only ever sees the hash.
type randomTokenSource struct{}

// NewSessionTokenSource is the constructor for randomTokenSource.
func NewSessionTokenSource() service.SessionTokenSource {
	return &randomTokenSource{}
}

// Generate returns a fresh random token and the hash to store for it.
func (s *randomTokenSource) Generate() (string, string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes for session token")
	}

	raw := base64.RawURLEncoding.EncodeToString(buf)

	return raw, s.Hash(raw), nil
}

// Hash fingerprints a raw token presented by a client for lookup.
func (s *randomTokenSource) Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
