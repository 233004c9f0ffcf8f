// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Output DTOs ---

// OverviewOutput aggregates the dashboard headline numbers. All values are
// computed on demand from current store state, never cached.
type OverviewOutput struct {
	TotalProducts int64           `json:"totalProducts"`
	StockValue    decimal.Decimal `json:"stockValue"`
	MonthlySales  int64           `json:"monthlySales"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// InventoryOutput lists products needing restock attention.
type InventoryOutput struct {
	LowStock        []*entity.Product `json:"lowStock"`
	OutOfStock      []*entity.Product `json:"outOfStock"`
	LowStockCount   int               `json:"lowStockCount"`
	OutOfStockCount int               `json:"outOfStockCount"`
}

// AnalyticsUsecase defines the interface for derived store analytics.
type AnalyticsUsecase interface {
	// Overview returns product count, stock value, current-month sales count
	// and total revenue. The four aggregations run in parallel; an empty
	// store yields all zeroes.
	Overview(ctx context.Context) (*OverviewOutput, error)

	// Inventory returns the low-stock and out-of-stock product lists with
	// their counts. The low-stock threshold comes from configuration.
	Inventory(ctx context.Context) (*InventoryOutput, error)
}
