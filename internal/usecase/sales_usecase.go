// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultRecentSalesLimit caps the recent-sales listing when the caller
// does not ask for a specific count.
const DefaultRecentSalesLimit = 10

// --- Input DTOs ---

// RecordSaleInput defines the data required to record a sale.
// ProductID may be nil for sales of items no longer in the catalog.
type RecordSaleInput struct {
	ProductID    *uuid.UUID
	Quantity     int
	TotalAmount  decimal.Decimal
	CustomerName string
	SaleDate     time.Time
}

// SalesUsecase defines the interface for sale recording and history.
type SalesUsecase interface {
	// RecordSale writes the sale and, when it references a product with a
	// positive quantity, decrements that product's stock. Both writes happen
	// in a single transaction: an insufficient stock level aborts the sale.
	RecordSale(ctx context.Context, input RecordSaleInput) (*entity.Sale, error)

	// ListSales returns every sale, newest first.
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// RecentSales returns the limit most recent sales. A non-positive limit
	// falls back to DefaultRecentSalesLimit.
	RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error)
}
