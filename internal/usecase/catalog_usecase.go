// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a new product.
type CreateProductInput struct {
	Name           string
	Brand          string
	Description    string
	Category       string
	Price          decimal.Decimal
	Stock          int
	SKU            string
	ImageURL       string
	Specifications map[string]string
}

// UpdateProductInput defines a partial product update. Nil fields are
// left untouched on the stored row.
type UpdateProductInput struct {
	Name           *string
	Brand          *string
	Description    *string
	Category       *string
	Price          *decimal.Decimal
	Stock          *int
	SKU            *string
	ImageURL       *string
	Specifications map[string]string
}

// CatalogUsecase defines the interface for product catalog operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// ListProducts returns all active products, newest first.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns a single product by ID, active or not.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct persists a new active product and returns it.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies the partial update and returns the updated product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct marks the product inactive. The row is kept so existing
	// sales history stays intact.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
