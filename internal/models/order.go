package models

import "time"

// OrderRequest represents an incoming order request.
type OrderRequest struct {
	Items []OrderItem `json:"items"`
}

// OrderItem represents a single item in an order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order represents a placed order. Paid and Deleted are monotonic flags:
// once set they are never cleared.
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Paid      bool        `json:"paid"`
	Deleted   bool        `json:"deleted,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
