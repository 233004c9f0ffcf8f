// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	txManager   repository.TransactionManager
	hasher      service.PasswordHasher
	tokens      service.SessionTokenSource
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	adminRepo repository.AdminRepository,
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.SessionTokenSource,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		hasher:      hasher,
		tokens:      tokens,
		cfg:         cfg,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NeedsSetup reports whether no admin credential exists yet.
func (srv *authService) NeedsSetup(ctx context.Context) (bool, error) {
	count, err := srv.adminRepo.Count(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to count admin credentials", slog.Any("error", err))

		return false, errors.Wrap(err, "failed to count admin credentials")
	}

	return count == 0, nil
}

// Setup creates the first admin credential. The existence check and the
// insert share one transaction so two racing setup calls cannot both win.
func (srv *authService) Setup(ctx context.Context, input usecase.SetupInput) error {
	srv.log(ctx).Info("Bootstrapping first admin", slog.String("username", input.Username))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		// 1. Setup is only allowed while zero credentials exist.
		count, err := adminRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count admin credentials")
		}
		if count > 0 {
			return domainerrors.ErrSetupAlreadyDone
		}

		// 2. Create the credential with the pre-computed hash.
		admin := &entity.AdminCredential{
			Username:     input.Username,
			PasswordHash: hash,
			IsActive:     true,
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to create admin credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to bootstrap admin", slog.Any("error", err), slog.String("username", input.Username))

		return err
	}
	srv.log(ctx).Info("Successfully bootstrapped admin", slog.String("username", input.Username))

	return nil
}

// Login verifies the credential and starts a server-side session.
// Unknown username, inactive account and wrong password all collapse into
// the same error so callers cannot probe which usernames exist.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	admin, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		srv.log(ctx).Error("Failed to look up admin", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	if !admin.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	raw, hash, err := srv.tokens.Generate()
	if err != nil {
		srv.log(ctx).Error("Failed to generate session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		TokenHash:     hash,
		AdminID:       admin.ID,
		AdminUsername: admin.Username,
		ExpiresAt:     time.Now().Add(srv.cfg.SessionTTL()),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("error", err), slog.Any("admin_id", admin.ID))

		return nil, errors.Wrap(err, "failed to create session")
	}
	srv.log(ctx).Info("Admin logged in", slog.Any("admin_id", admin.ID), slog.String("username", admin.Username))

	return &usecase.LoginOutput{
		Token:     raw,
		ExpiresAt: session.ExpiresAt,
		Admin: &entity.AdminIdentity{
			ID:       admin.ID,
			Username: admin.Username,
		},
	}, nil
}

// Logout ends the session identified by the raw token. A token that no
// longer maps to a session is treated as already logged out.
func (srv *authService) Logout(ctx context.Context, token string) error {
	err := srv.sessionRepo.DeleteByTokenHash(ctx, srv.tokens.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return domainerrors.ErrLogoutFailed
	}
	srv.log(ctx).Info("Admin logged out")

	return nil
}

// CurrentAdmin resolves the raw session token to the admin identity.
func (srv *authService) CurrentAdmin(ctx context.Context, token string) (*entity.AdminIdentity, error) {
	if token == "" {
		return nil, domainerrors.ErrNotAuthenticated
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokens.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrNotAuthenticated
		}
		srv.log(ctx).Error("Failed to resolve session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return &entity.AdminIdentity{
		ID:       session.AdminID,
		Username: session.AdminUsername,
	}, nil
}

// CleanupExpiredSessions removes sessions past their TTL.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) error {
	if err := srv.sessionRepo.DeleteExpired(ctx); err != nil {
		srv.log(ctx).Error("Failed to cleanup expired sessions", slog.Any("error", err))

		return errors.Wrap(err, "failed to cleanup expired sessions")
	}
	srv.log(ctx).Debug("Cleaned up expired sessions")

	return nil
}

// UpsertUser stores or refreshes a platform-login identity record.
func (srv *authService) UpsertUser(ctx context.Context, input usecase.UpsertUserInput) (*entity.User, error) {
	user := &entity.User{
		ID:              input.ID,
		Email:           input.Email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		ProfileImageURL: input.ProfileImageURL,
	}

	if err := srv.userRepo.Upsert(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to upsert user", slog.Any("error", err), slog.String("user_id", input.ID))

		return nil, errors.Wrap(err, "failed to upsert user")
	}

	return user, nil
}

// GetUser returns the identity record with the given provider ID.
func (srv *authService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to get user", slog.Any("error", err), slog.String("user_id", id))

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}
