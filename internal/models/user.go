package models

import "time"

// Roles assignable to a user account. Registration always produces RoleUser;
// admin accounts are provisioned out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
// The bcrypt hash never leaves the process; it is excluded from JSON output.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
