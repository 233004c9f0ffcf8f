// Package entity contains the core business objects of the project.
package entity

import "time"

// User is a generic platform-login identity record, separate from the
// admin-credential flow. The ID is supplied by the external identity
// provider, so it is a string rather than a generated UUID.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
