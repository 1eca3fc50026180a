package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shoplite/api/internal/models"
	"github.com/shoplite/api/internal/repository"
)

// CartService handles the process-wide shared cart
type CartService struct {
	cart     repository.CartRepository
	products repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cart repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{
		cart:     cart,
		products: products,
	}
}

// Items returns the current cart contents
func (s *CartService) Items(ctx context.Context) ([]models.CartItem, error) {
	return s.cart.Items(ctx)
}

// AddItem validates the referenced product and appends a line to the cart,
// returning the updated contents
func (s *CartService) AddItem(ctx context.Context, input models.CartItemInput) ([]models.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.products.GetByID(ctx, input.ProductID); err != nil {
		return nil, ErrInvalidProduct
	}

	now := time.Now()
	item := models.CartItem{
		ID:        uuid.NewString(),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.cart.Add(ctx, item); err != nil {
		return nil, err
	}

	return s.cart.Items(ctx)
}

// UpdateItem changes the quantity of an existing cart line and returns the
// updated contents
func (s *CartService) UpdateItem(ctx context.Context, id string, input models.CartItemInput) ([]models.CartItem, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cart.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Quantity = input.Quantity
	item.UpdatedAt = time.Now()

	if err := s.cart.Update(ctx, *item); err != nil {
		return nil, err
	}

	return s.cart.Items(ctx)
}

// RemoveItem takes a line out of the cart
func (s *CartService) RemoveItem(ctx context.Context, id string) error {
	return s.cart.Remove(ctx, id)
}
