// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SaleRepository defines the standard operations for sale persistence.
// Sales have no update or delete operations; they are immutable history.
type SaleRepository interface {
	// Create persists a new sale. SaleDate defaults to the current time when
	// unset; the entity is updated in place with the generated ID.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindAll retrieves every sale ordered by sale date descending.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// FindRecent retrieves the most recent sales, capped at limit.
	FindRecent(ctx context.Context, limit int) ([]*entity.Sale, error)

	// CountCurrentMonth counts sales whose sale date falls within the
	// current calendar month, using the store's date-truncation semantics.
	CountCurrentMonth(ctx context.Context) (int64, error)

	// TotalRevenue returns SUM(total_amount) over all sales, computed
	// store-side. Zero when no sales exist.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}
