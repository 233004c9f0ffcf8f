// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session matches the token hash.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when the matching session's TTL has elapsed.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the operations for server-side admin sessions.
// Sessions live in their own table with a TTL column, independent of the
// business tables.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by the hash of its opaque token.
	// Expired sessions yield ErrSessionExpired.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes the session, ending it.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their TTL. Called periodically
	// for cleanup.
	DeleteExpired(ctx context.Context) error
}
