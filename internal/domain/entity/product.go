// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item.
// Price is decimal-accurate; monetary math must never go through binary floats.
// Specifications is a free-form key/value mapping; its JSON encoding is a
// storage-layer concern and never leaks into this type.
type Product struct {
	ID             uuid.UUID         `json:"id"`             // The Global Unique Identifier (GUID) for the product.
	Name           string            `json:"name"`           // Display name of the product.
	Brand          string            `json:"brand"`          // Optional brand name.
	Description    string            `json:"description"`    // Optional long-form description.
	Category       string            `json:"category"`       // Free-form category label, not an enumerated FK.
	Price          decimal.Decimal   `json:"price"`          // Unit price, decimal-accurate.
	Stock          int               `json:"stock"`          // Count of sellable units currently available.
	SKU            string            `json:"sku"`            // Optional stock keeping unit code.
	ImageURL       string            `json:"imageUrl"`       // Optional image location.
	Specifications map[string]string `json:"specifications"` // Free-form key/value attributes.
	IsActive       bool              `json:"isActive"`       // Soft-delete marker; false means logically deleted.
	CreatedAt      time.Time         `json:"createdAt"`      // Timestamp of when this product was created.
	UpdatedAt      time.Time         `json:"updatedAt"`      // Timestamp of the last modification.
}

// ProductPatch carries a partial product update. Nil fields are left untouched.
type ProductPatch struct {
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
