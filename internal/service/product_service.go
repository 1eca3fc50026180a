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
	ErrMissingProductFields = errors.New("product name and price are required")
	ErrNegativePrice        = errors.New("price must be non-negative")
)

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all products, soft-deleted ones included
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct builds a product from the input and stores it
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	if input.Name == nil || *input.Name == "" || input.Price == nil {
		return nil, ErrMissingProductFields
	}
	if *input.Price < 0 {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	product := models.Product{
		ID:        uuid.NewString(),
		Name:      *input.Name,
		Price:     *input.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct merges the submitted fields into the stored product.
// Submitted fields take precedence; absent fields keep their stored values.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input models.ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, ErrNegativePrice
		}
		product.Price = *input.Price
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, *product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct marks a product as deleted. The record stays in the store.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	product.Deleted = true
	product.UpdatedAt = time.Now()

	return s.repo.Update(ctx, *product)
}
