// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProductRequest is the request body for product creation.
// Price arrives as a JSON number or string; decimal keeps it exact.
type CreateProductRequest struct {
	Name           string            `json:"name" validate:"required"`
	Brand          string            `json:"brand"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          decimal.Decimal   `json:"price" validate:"required"`
	Stock          int               `json:"stock" validate:"gte=0"`
	SKU            string            `json:"sku"`
	ImageURL       string            `json:"imageUrl"`
	Specifications map[string]string `json:"specifications"`
}

// UpdateProductRequest is the request body for partial product updates.
// Absent fields leave the stored value untouched.
type UpdateProductRequest struct {
	Name           *string           `json:"name"`
	Brand          *string           `json:"brand"`
	Description    *string           `json:"description"`
	Category       *string           `json:"category"`
	Price          *decimal.Decimal  `json:"price"`
	Stock          *int              `json:"stock" validate:"omitempty,gte=0"`
	SKU            *string           `json:"sku"`
	ImageURL       *string           `json:"imageUrl"`
	Specifications map[string]string `json:"specifications"`
}

// ListProducts handles GET /api/products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// CreateProduct handles POST /api/products.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		Stock:          req.Stock,
		SKU:            req.SKU,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// UpdateProduct handles PUT /api/products/:id.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		Stock:          req.Stock,
		SKU:            req.SKU,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct handles DELETE /api/products/:id. The product is soft
// deleted so sales history keeps resolving.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseProductID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"}, "Product deleted")
}

func parseProductID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	return id, nil
}
