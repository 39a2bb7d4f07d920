package domain

import "time"

// User is an account in the system. All recipes, tags and ingredients
// belong to exactly one user; deleting a user removes everything it owns.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never expose hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterUserRequest is the request body for creating an account.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UpdateUserRequest is the request body for updating the authenticated user.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}
