package model

import "time"

// UserModel mirrors the 'users' table. The ID comes from the external
// identity provider, so it is a caller-supplied varchar rather than a
// database-generated UUID.
type UserModel struct {
	ID              string `gorm:"type:varchar(255);primary_key"`
	Email           string `gorm:"type:varchar(255);unique"`
	FirstName       string `gorm:"type:varchar(100)"`
	LastName        string `gorm:"type:varchar(100)"`
	ProfileImageURL string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
