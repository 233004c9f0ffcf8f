package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/mocks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runRequireAdmin(t *testing.T, uc *mocks.AuthUsecase, cookie *http.Cookie) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewSessionMiddleware(uc, &config.Config{})

	nextCalled := false
	err := m.RequireAdmin(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)

	return err, nextCalled
}

func TestRequireAdmin_MissingCookie(t *testing.T) {
	t.Parallel()

	uc := new(mocks.AuthUsecase)

	err, nextCalled := runRequireAdmin(t, uc, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	assert.False(t, nextCalled)
	uc.AssertNotCalled(t, "CurrentAdmin", mock.Anything, mock.Anything)
}

func TestRequireAdmin_InvalidSession(t *testing.T) {
	t.Parallel()

	uc := new(mocks.AuthUsecase)
	uc.On("CurrentAdmin", mock.Anything, "stale-token").
		Return(nil, domainerrors.ErrNotAuthenticated)

	err, nextCalled := runRequireAdmin(t, uc, &http.Cookie{Name: "storefront_session", Value: "stale-token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	assert.False(t, nextCalled)
}

func TestRequireAdmin_ValidSession(t *testing.T) {
	t.Parallel()

	uc := new(mocks.AuthUsecase)
	identity := &entity.AdminIdentity{ID: uuid.New(), Username: "admin"}
	uc.On("CurrentAdmin", mock.Anything, "raw-token").Return(identity, nil)

	err, nextCalled := runRequireAdmin(t, uc, &http.Cookie{Name: "storefront_session", Value: "raw-token"})

	require.NoError(t, err)
	assert.True(t, nextCalled)
}
