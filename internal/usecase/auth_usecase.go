// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SetupInput defines the data required to bootstrap the first admin.
type SetupInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpsertUserInput defines a platform-login identity record to store.
// The ID comes from the external identity provider.
type UpsertUserInput struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// --- Output DTOs ---

// LoginOutput returns the minted session token after a successful login.
// The raw token goes to the browser cookie; it is never persisted.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Admin     *entity.AdminIdentity
}

// AuthUsecase defines the interface for the admin authentication gate.
type AuthUsecase interface {
	// NeedsSetup reports whether no admin credential exists yet.
	NeedsSetup(ctx context.Context) (bool, error)

	// Setup creates the first admin credential. It fails with
	// ErrSetupAlreadyDone when any credential already exists; the existence
	// check and the insert share one transaction.
	Setup(ctx context.Context, input SetupInput) error

	// Login verifies the credential and starts a server-side session.
	// Unknown username, inactive account and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout ends the session identified by the raw token. Ending an
	// already-ended session is not an error.
	Logout(ctx context.Context, token string) error

	// CurrentAdmin resolves the raw session token to the admin identity,
	// or ErrNotAuthenticated when the session is missing or expired.
	CurrentAdmin(ctx context.Context, token string) (*entity.AdminIdentity, error)

	// CleanupExpiredSessions removes sessions past their TTL. Called
	// periodically by the background sweeper.
	CleanupExpiredSessions(ctx context.Context) error

	// UpsertUser stores or refreshes a platform-login identity record.
	UpsertUser(ctx context.Context, input UpsertUserInput) (*entity.User, error)

	// GetUser returns the identity record with the given provider ID.
	GetUser(ctx context.Context, id string) (*entity.User, error)
}
