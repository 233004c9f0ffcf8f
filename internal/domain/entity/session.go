// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a live admin session. The browser holds an opaque
// random token; only its SHA-256 hash is persisted, so a leaked sessions
// table cannot be replayed.
type Session struct {
	ID            uuid.UUID // The unique ID for this session record.
	TokenHash     string    // SHA-256 hash of the raw session token.
	AdminID       uuid.UUID // The authenticated admin's ID.
	AdminUsername string    // Denormalized username for cheap introspection.
	ExpiresAt     time.Time // Fixed TTL from issuance; expired sessions are invalid.
	CreatedAt     time.Time // Timestamp of when this session was issued.
}
