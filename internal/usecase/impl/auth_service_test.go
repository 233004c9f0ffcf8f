package impl

import (
	"context"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/mocks"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	adminRepo   *mocks.AdminRepository
	sessionRepo *mocks.SessionRepository
	userRepo    *mocks.UserRepository
	hasher      *mocks.PasswordHasher
	tokens      *mocks.SessionTokenSource
}

func newAuthServiceForTest() (usecase.AuthUsecase, *authServiceMocks) {
	deps := &authServiceMocks{
		adminRepo:   new(mocks.AdminRepository),
		sessionRepo: new(mocks.SessionRepository),
		userRepo:    new(mocks.UserRepository),
		hasher:      new(mocks.PasswordHasher),
		tokens:      new(mocks.SessionTokenSource),
	}
	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{Admins: deps.adminRepo},
	}

	srv := NewAuthService(
		deps.adminRepo,
		deps.sessionRepo,
		deps.userRepo,
		txManager,
		deps.hasher,
		deps.tokens,
		&config.Config{},
		newTestLogger(),
	)

	return srv, deps
}

func TestNeedsSetup(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()
	deps.adminRepo.On("Count", mock.Anything).Return(int64(0), nil)

	needed, err := srv.NeedsSetup(context.Background())

	require.NoError(t, err)
	assert.True(t, needed)
}

func TestSetup_CreatesFirstAdmin(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()
	deps.hasher.On("Hash", "hunter2").Return("$2a$10$hash", nil)
	deps.adminRepo.On("Count", mock.Anything).Return(int64(0), nil)
	deps.adminRepo.On("Create", mock.Anything, mock.MatchedBy(func(admin *entity.AdminCredential) bool {
		return admin.Username == "admin" && admin.PasswordHash == "$2a$10$hash" && admin.IsActive
	})).Return(nil)

	err := srv.Setup(context.Background(), usecase.SetupInput{Username: "admin", Password: "hunter2"})

	require.NoError(t, err)
	deps.adminRepo.AssertExpectations(t)
}

func TestSetup_RejectedWhenAdminExists(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()
	deps.hasher.On("Hash", "hunter2").Return("$2a$10$hash", nil)
	deps.adminRepo.On("Count", mock.Anything).Return(int64(1), nil)

	err := srv.Setup(context.Background(), usecase.SetupInput{Username: "admin", Password: "hunter2"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSetupAlreadyDone)
	deps.adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()

	adminID := uuid.New()
	deps.adminRepo.On("FindByUsername", mock.Anything, "admin").Return(&entity.AdminCredential{
		ID:           adminID,
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	}, nil)
	deps.hasher.On("Check", "hunter2", "$2a$10$hash").Return(true)
	deps.tokens.On("Generate").Return("raw-token", "hashed-token", nil)
	deps.sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(session *entity.Session) bool {
		return session.TokenHash == "hashed-token" &&
			session.AdminID == adminID &&
			session.AdminUsername == "admin" &&
			session.ExpiresAt.After(time.Now())
	})).Return(nil)

	out, err := srv.Login(context.Background(), usecase.LoginInput{Username: "admin", Password: "hunter2"})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "raw-token", out.Token)
	assert.Equal(t, adminID, out.Admin.ID)
	assert.Equal(t, "admin", out.Admin.Username)
}

// The three failure modes must be indistinguishable to the caller.
func TestLogin_FailuresCollapseToInvalidCredentials(t *testing.T) {
	t.Parallel()

	t.Run("unknown username", func(t *testing.T) {
		t.Parallel()

		srv, deps := newAuthServiceForTest()
		deps.adminRepo.On("FindByUsername", mock.Anything, "ghost").
			Return(nil, repository.ErrAdminNotFound)

		_, err := srv.Login(context.Background(), usecase.LoginInput{Username: "ghost", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		t.Parallel()

		srv, deps := newAuthServiceForTest()
		deps.adminRepo.On("FindByUsername", mock.Anything, "admin").Return(&entity.AdminCredential{
			Username:     "admin",
			PasswordHash: "$2a$10$hash",
			IsActive:     false,
		}, nil)

		_, err := srv.Login(context.Background(), usecase.LoginInput{Username: "admin", Password: "hunter2"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		deps.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		srv, deps := newAuthServiceForTest()
		deps.adminRepo.On("FindByUsername", mock.Anything, "admin").Return(&entity.AdminCredential{
			Username:     "admin",
			PasswordHash: "$2a$10$hash",
			IsActive:     true,
		}, nil)
		deps.hasher.On("Check", "wrong", "$2a$10$hash").Return(false)

		_, err := srv.Login(context.Background(), usecase.LoginInput{Username: "admin", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestLogout_IdempotentOnMissingSession(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()
	deps.tokens.On("Hash", "raw-token").Return("hashed-token")
	deps.sessionRepo.On("DeleteByTokenHash", mock.Anything, "hashed-token").
		Return(repository.ErrSessionNotFound)

	err := srv.Logout(context.Background(), "raw-token")

	require.NoError(t, err)
}

func TestLogout_StoreFailure(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()
	deps.tokens.On("Hash", "raw-token").Return("hashed-token")
	deps.sessionRepo.On("DeleteByTokenHash", mock.Anything, "hashed-token").
		Return(assert.AnError)

	err := srv.Logout(context.Background(), "raw-token")

	assert.ErrorIs(t, err, domainerrors.ErrLogoutFailed)
}

func TestCurrentAdmin(t *testing.T) {
	t.Parallel()

	t.Run("valid session", func(t *testing.T) {
		t.Parallel()

		srv, deps := newAuthServiceForTest()
		adminID := uuid.New()
		deps.tokens.On("Hash", "raw-token").Return("hashed-token")
		deps.sessionRepo.On("FindByTokenHash", mock.Anything, "hashed-token").Return(&entity.Session{
			TokenHash:     "hashed-token",
			AdminID:       adminID,
			AdminUsername: "admin",
			ExpiresAt:     time.Now().Add(time.Hour),
		}, nil)

		identity, err := srv.CurrentAdmin(context.Background(), "raw-token")

		require.NoError(t, err)
		assert.Equal(t, adminID, identity.ID)
		assert.Equal(t, "admin", identity.Username)
	})

	t.Run("expired session", func(t *testing.T) {
		t.Parallel()

		srv, deps := newAuthServiceForTest()
		deps.tokens.On("Hash", "raw-token").Return("hashed-token")
		deps.sessionRepo.On("FindByTokenHash", mock.Anything, "hashed-token").
			Return(nil, repository.ErrSessionExpired)

		_, err := srv.CurrentAdmin(context.Background(), "raw-token")

		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		srv, _ := newAuthServiceForTest()

		_, err := srv.CurrentAdmin(context.Background(), "")

		assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})
}

func TestUpsertUser(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()
	deps.userRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		return user.ID == "ext-123" && user.Email == "a@b.c"
	})).Return(nil)

	user, err := srv.UpsertUser(context.Background(), usecase.UpsertUserInput{
		ID:    "ext-123",
		Email: "a@b.c",
	})

	require.NoError(t, err)
	assert.Equal(t, "ext-123", user.ID)
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()

	srv, deps := newAuthServiceForTest()
	deps.userRepo.On("FindByID", mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := srv.GetUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
