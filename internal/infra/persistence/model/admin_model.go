package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminCredentialModel mirrors the 'admin_credentials' table.
type AdminCredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminCredentialModel) TableName() string {
	return "admin_credentials"
}
