package service

// SessionTokenSource mints and fingerprints opaque session tokens.
// The raw token travels in the cookie; only its hash is ever persisted,
// so the details of generation and hashing stay out of the use cases.
type SessionTokenSource interface {
	// Generate returns a fresh random token and the hash to store for it.
	Generate() (raw string, hash string, err error)

	// Hash fingerprints a raw token presented by a client for lookup.
	Hash(raw string) string
}
