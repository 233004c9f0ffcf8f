package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleModel mirrors the 'sales' table. ProductID is a weak reference to
// products.id with no cascade; a sale survives its product's soft delete.
type SaleModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID    *uuid.UUID      `gorm:"type:uuid;index"`
	Quantity     int             `gorm:"not null"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustomerName string          `gorm:"type:varchar(255)"`
	SaleDate     time.Time       `gorm:"not null;default:now();index"`
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}
