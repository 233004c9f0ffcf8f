// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// SetupRequest is the request body for bootstrapping the first admin.
type SetupRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SetupCheck handles GET /api/setup/check.
func (h *AuthHandler) SetupCheck(c echo.Context) error {
	needed, err := h.uc.NeedsSetup(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"needsSetup": needed}, "")
}

// Setup handles POST /api/setup.
func (h *AuthHandler) Setup(c echo.Context) error {
	var req SetupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Setup(c.Request().Context(), usecase.SetupInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Admin created"}, "Admin created")
}

// Login handles POST /api/login. A successful login sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(out.Token, out.ExpiresAt))

	return response.Success(c, http.StatusOK, out.Admin, "Login successful")
}

// Logout handles POST /api/logout. The cookie is cleared even when no
// session exists server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.SessionCookieName())
	if err == nil && cookie.Value != "" {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(h.expiredSessionCookie())

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logout successful")
}

// CurrentAdmin handles GET /api/auth/admin. The session middleware has
// already resolved the identity.
func (h *AuthHandler) CurrentAdmin(c echo.Context) error {
	identity := middleware.AdminFromContext(c)
	if identity == nil {
		return domainerrors.ErrNotAuthenticated
	}

	return response.Success(c, http.StatusOK, identity, "")
}

// sessionCookie builds the HttpOnly cookie carrying the raw session token.
func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.SessionCookieName(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Auth != nil && h.cfg.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredSessionCookie tells the browser to drop the session cookie.
func (h *AuthHandler) expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Auth != nil && h.cfg.Auth.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
