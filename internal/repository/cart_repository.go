package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/shoplite/api/internal/models"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for the shared cart.
// There is a single cart per process, not one per user.
type CartRepository interface {
	Items(ctx context.Context) ([]models.CartItem, error)
	GetByID(ctx context.Context, id string) (*models.CartItem, error)
	Add(ctx context.Context, item models.CartItem) error
	Update(ctx context.Context, item models.CartItem) error
	Remove(ctx context.Context, id string) error
}

// InMemoryCartRepository implements CartRepository with in-memory storage
type InMemoryCartRepository struct {
	mu    sync.RWMutex
	items []models.CartItem
}

// NewInMemoryCartRepository creates a new empty in-memory cart
func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		items: make([]models.CartItem, 0),
	}
}

// Items returns the cart contents in insertion order
func (r *InMemoryCartRepository) Items(ctx context.Context) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.CartItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID returns a cart item by its ID
func (r *InMemoryCartRepository) GetByID(ctx context.Context, id string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, ErrCartItemNotFound
}

// Add appends an item to the cart
func (r *InMemoryCartRepository) Add(ctx context.Context, item models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

// Update replaces the stored item with the same ID
func (r *InMemoryCartRepository) Update(ctx context.Context, item models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return ErrCartItemNotFound
}

// Remove deletes an item from the cart
func (r *InMemoryCartRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}
