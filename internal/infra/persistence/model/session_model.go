package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. Sessions live apart from the
// business tables; expiry is a TTL column checked on lookup and swept by the
// cleanup job.
type SessionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TokenHash     string    `gorm:"type:varchar(64);unique;not null"`
	AdminID       uuid.UUID `gorm:"type:uuid;not null;index"`
	AdminUsername string    `gorm:"type:varchar(100);not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
