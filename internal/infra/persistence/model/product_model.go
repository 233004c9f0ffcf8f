package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// Specifications holds the raw JSON text; decoding to a map happens in the repository mapper.
type ProductModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Brand          string          `gorm:"type:varchar(100)"`
	Description    string          `gorm:"type:text"`
	Category       string          `gorm:"type:varchar(100)"`
	Price          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock          int             `gorm:"not null;default:0"`
	SKU            string          `gorm:"column:sku;type:varchar(100)"`
	ImageURL       string          `gorm:"type:text"`
	Specifications string          `gorm:"type:text"`
	IsActive       bool            `gorm:"not null;default:true;index"`
	CreatedAt      time.Time       `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
