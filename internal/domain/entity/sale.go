// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale records a completed transaction. Sales are immutable once created;
// no update or delete operation exists for them.
type Sale struct {
	ID           uuid.UUID       `json:"id"`           // The Global Unique Identifier (GUID) for the sale.
	ProductID    *uuid.UUID      `json:"productId"`    // Weak reference to the sold product, may be absent.
	Quantity     int             `json:"quantity"`     // Number of units sold.
	TotalAmount  decimal.Decimal `json:"totalAmount"`  // Total charged amount, decimal-accurate.
	CustomerName string          `json:"customerName"` // Optional customer name.
	SaleDate     time.Time       `json:"saleDate"`     // When the sale happened; defaults to creation time.
}
