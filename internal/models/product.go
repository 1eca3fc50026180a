package models

import "time"

// Product represents a catalog entry. Deletion is a soft flag; deleted
// products stay in the store and in list responses.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Deleted   bool      `json:"deleted,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductInput is the request body for creating or updating a product.
// Pointer fields distinguish "absent" from zero values on update.
type ProductInput struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
