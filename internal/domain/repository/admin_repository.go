// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrAdminNotFound is returned when no credential matches the given username.
var ErrAdminNotFound = errors.New("admin credential not found")

// AdminRepository defines the operations for admin credential persistence.
// Credentials are never deleted; deactivation is handled via the active flag.
type AdminRepository interface {
	// FindByUsername retrieves the credential with the given unique username.
	FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error)

	// Create persists a new credential row. The caller is responsible for
	// hashing the password before this call.
	Create(ctx context.Context, admin *entity.AdminCredential) error

	// Count returns the total number of credential rows. Zero rows means the
	// system is in first-run ("setup") state.
	Count(ctx context.Context) (int64, error)
}
