package models

import "time"

// User is an account that can sign in to the application. The core domain
// does not enforce authorization; users only gate the HTTP surface.
// The hash must survive the snapshot round trip, so it carries a real JSON
// key; API responses go through UserResponse and never expose it.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	EncryptedPassword string    `json:"encryptedPassword"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
