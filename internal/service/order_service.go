package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shoplite/api/internal/models"
	"github.com/shoplite/api/internal/repository"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
)

// OrderService handles order business logic
type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
	}
}

// CreateOrder validates the requested items, prices them against the current
// catalog and stores the resulting order
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var total float64
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, ErrInvalidProduct
		}

		total += product.Price * float64(item.Quantity)
	}

	now := time.Now()
	order := models.Order{
		ID:        uuid.NewString(),
		Items:     req.Items,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	return &order, nil
}

// PayOrder marks an order as paid. The flag is monotonic: paying an already
// paid order is a no-op that still returns the order.
func (s *OrderService) PayOrder(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Paid = true
	order.UpdatedAt = time.Now()

	if err := s.orders.Update(ctx, *order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns all orders, soft-deleted ones included
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.GetAll(ctx)
}

// GetOrder returns an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// DeleteOrder marks an order as deleted. The record stays in the store.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}

	order.Deleted = true
	order.UpdatedAt = time.Now()

	return s.orders.Update(ctx, *order)
}
