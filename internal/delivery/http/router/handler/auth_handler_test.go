package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/mocks"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandlerForTest() (*AuthHandler, *mocks.AuthUsecase) {
	uc := new(mocks.AuthUsecase)

	return NewAuthHandler(uc, &config.Config{}, newTestLogger()), uc
}

func TestSetupCheck(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()
	uc.On("NeedsSetup", mock.Anything).Return(true, nil)

	rec := doJSON(e, http.MethodGet, "/api/setup/check", "", nil, h.SetupCheck)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["needsSetup"])
}

func TestSetup_AlreadyDone(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()
	uc.On("Setup", mock.Anything, mock.Anything).Return(domainerrors.ErrSetupAlreadyDone)

	body := `{"username":"admin","password":"password123"}`
	rec := doJSON(e, http.MethodPost, "/api/setup", body, nil, h.Setup)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SETUP_ALREADY_DONE", resp.Error.Code)
	assert.Equal(t, "Admin already exists", resp.Message)
}

func TestSetup_WeakInputRejected(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()

	body := `{"username":"ad","password":"short"}`
	rec := doJSON(e, http.MethodPost, "/api/setup", body, nil, h.Setup)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Setup", mock.Anything, mock.Anything)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()

	adminID := uuid.New()
	uc.On("Login", mock.Anything, usecase.LoginInput{Username: "admin", Password: "hunter22"}).
		Return(&usecase.LoginOutput{
			Token:     "raw-token",
			ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
			Admin:     &entity.AdminIdentity{ID: adminID, Username: "admin"},
		}, nil)

	body := `{"username":"admin","password":"hunter22"}`
	rec := doJSON(e, http.MethodPost, "/api/login", body, nil, h.Login)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "storefront_session", cookie.Name)
	assert.Equal(t, "raw-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()

	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"username":"admin","password":"wrong"}`
	rec := doJSON(e, http.MethodPost, "/api/login", body, nil, h.Login)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp.Message)
	// No cookie must be set on failed login.
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_MissingFieldsRejected(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()

	body := `{"username":"admin"}`
	rec := doJSON(e, http.MethodPost, "/api/login", body, nil, h.Login)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestLogout_ClearsCookie(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()

	uc.On("Logout", mock.Anything, "raw-token").Return(nil)

	rec := doJSON(e, http.MethodPost, "/api/logout", "", func(c echo.Context) {
		c.Request().AddCookie(&http.Cookie{Name: "storefront_session", Value: "raw-token"})
	}, h.Logout)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
	uc.AssertExpectations(t)
}

func TestLogout_StoreFailure(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	h, uc := newAuthHandlerForTest()

	uc.On("Logout", mock.Anything, "raw-token").Return(domainerrors.ErrLogoutFailed)

	rec := doJSON(e, http.MethodPost, "/api/logout", "", func(c echo.Context) {
		c.Request().AddCookie(&http.Cookie{Name: "storefront_session", Value: "raw-token"})
	}, h.Logout)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCurrentAdmin(t *testing.T) {
	t.Parallel()

	t.Run("resolved identity", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		h, _ := newAuthHandlerForTest()

		adminID := uuid.New()
		rec := doJSON(e, http.MethodGet, "/api/auth/admin", "", func(c echo.Context) {
			c.Set(middleware.ContextKeyAdmin, &entity.AdminIdentity{ID: adminID, Username: "admin"})
		}, h.CurrentAdmin)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "admin", data["username"])
	})

	t.Run("no identity on context", func(t *testing.T) {
		t.Parallel()

		e := newTestEcho()
		h, _ := newAuthHandlerForTest()

		rec := doJSON(e, http.MethodGet, "/api/auth/admin", "", nil, h.CurrentAdmin)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
