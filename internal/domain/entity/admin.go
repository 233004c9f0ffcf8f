// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminCredential is one administrator's login record.
// The plaintext password never appears here; only the bcrypt hash is stored.
// Credentials are never deleted; deactivation flips IsActive.
type AdminCredential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	Username     string    // Globally unique login name.
	PasswordHash string    // bcrypt hash of the password.
	IsActive     bool      // Inactive credentials cannot log in.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

// AdminIdentity is the minimal admin view handed to callers after
// authentication. It deliberately omits the password hash.
type AdminIdentity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
