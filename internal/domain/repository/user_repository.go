// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is returned when no user matches the given ID.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations for platform-login identity records.
type UserRepository interface {
	// FindByID retrieves a single user by their provider-supplied ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// Upsert inserts the user or, when the ID already exists, overwrites the
	// profile fields and refreshes the update timestamp.
	Upsert(ctx context.Context, user *entity.User) error
}
