// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// maxRecentSalesLimit caps the recent-sales page size regardless of what
// the caller asks for.
const maxRecentSalesLimit = 100

// SaleHandler holds dependencies for sale handlers.
type SaleHandler struct {
	uc     usecase.SalesUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SalesUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateSaleRequest is the request body for recording a sale.
// ProductID is optional; a sale may reference nothing.
type CreateSaleRequest struct {
	ProductID    *string         `json:"productId"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	TotalAmount  decimal.Decimal `json:"totalAmount" validate:"required"`
	CustomerName string          `json:"customerName"`
	SaleDate     *time.Time      `json:"saleDate"`
}

// CreateSale handles POST /api/sales.
func (h *SaleHandler) CreateSale(c echo.Context) error {
	var req CreateSaleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := usecase.RecordSaleInput{
		Quantity:     req.Quantity,
		TotalAmount:  req.TotalAmount,
		CustomerName: req.CustomerName,
	}
	if req.ProductID != nil && *req.ProductID != "" {
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
		}
		input.ProductID = &productID
	}
	if req.SaleDate != nil {
		input.SaleDate = *req.SaleDate
	}

	sale, err := h.uc.RecordSale(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale recorded")
}

// ListSales handles GET /api/sales.
func (h *SaleHandler) ListSales(c echo.Context) error {
	sales, err := h.uc.ListSales(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sales, "")
}

// RecentSales handles GET /api/sales/recent?limit=N.
func (h *SaleHandler) RecentSales(c echo.Context) error {
	limit := usecase.DefaultRecentSalesLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a positive integer")
		}
		limit = parsed
	}
	if limit > maxRecentSalesLimit {
		limit = maxRecentSalesLimit
	}

	sales, err := h.uc.RecentSales(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sales, "")
}
