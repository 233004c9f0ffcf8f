package middleware

import (
	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyAdmin is the echo.Context key holding the authenticated identity.
const ContextKeyAdmin = "admin"

// SessionMiddleware guards admin-only routes. It resolves the session cookie
// to an identity and refuses the request otherwise; the downstream handler
// is never invoked on failure.
type SessionMiddleware struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{authUC: authUC, cfg: cfg}
}

// RequireAdmin validates the session cookie and stores the admin identity on
// the request context.
func (m *SessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.SessionCookieName())
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrNotAuthenticated
		}

		identity, err := m.authUC.CurrentAdmin(c.Request().Context(), cookie.Value)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyAdmin, identity)

		return next(c)
	}
}

// AdminFromContext returns the identity stored by RequireAdmin, or nil when
// the request is unauthenticated.
func AdminFromContext(c echo.Context) *entity.AdminIdentity {
	identity, _ := c.Get(ContextKeyAdmin).(*entity.AdminIdentity)

	return identity
}
