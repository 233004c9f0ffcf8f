// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product matches the given ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a stock decrement would drive
	// the stock count below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository defines the standard operations for product persistence.
// The application layer depends on this interface, never on the concrete implementation.
type ProductRepository interface {
	// FindAllActive retrieves every product with IsActive = true,
	// ordered by creation time descending (newest first).
	FindAllActive(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by ID regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product. IsActive defaults to true; the entity
	// is updated in place with the generated ID and timestamps.
	Create(ctx context.Context, product *entity.Product) error

	// Update merges the non-nil patch fields onto the stored row, refreshes
	// the update timestamp, and returns the updated product.
	Update(ctx context.Context, id uuid.UUID, patch *entity.ProductPatch) (*entity.Product, error)

	// SoftDelete flips IsActive to false and refreshes the update timestamp.
	// The row itself stays queryable through FindByID.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from the product's stock.
	// The update is conditional: it fails with ErrInsufficientStock when the
	// resulting stock would be negative.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// CountActive returns the number of active products.
	CountActive(ctx context.Context) (int64, error)

	// TotalStockValue returns SUM(price * stock) over active products,
	// computed store-side so no precision is lost. Zero when none exist.
	TotalStockValue(ctx context.Context) (decimal.Decimal, error)

	// FindLowStock returns active products with 0 < stock <= threshold.
	FindLowStock(ctx context.Context, threshold int) ([]*entity.Product, error)

	// FindOutOfStock returns active products with stock = 0.
	FindOutOfStock(ctx context.Context) ([]*entity.Product, error)
}
