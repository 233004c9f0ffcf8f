// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnalyticsHandler holds dependencies for analytics handlers.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Overview handles GET /api/analytics/overview.
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	overview, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "")
}

// Inventory handles GET /api/analytics/inventory.
func (h *AnalyticsHandler) Inventory(c echo.Context) error {
	inventory, err := h.uc.Inventory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "")
}
