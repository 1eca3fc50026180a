package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shoplite/api/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product models.Product) error
	Update(ctx context.Context, product models.Product) error
	Count(ctx context.Context) int
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository
// seeded with the sample catalog
func NewInMemoryProductRepository() *InMemoryProductRepository {
	now := time.Now()
	products := []models.Product{
		{ID: uuid.NewString(), Name: "Apple iPhone", Price: 865.99, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Android", Price: 165.99, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Roomba", Price: 200.99, CreatedAt: now, UpdatedAt: now},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns every product, including soft-deleted ones
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

// Create appends a new product to the catalog
func (r *InMemoryProductRepository) Create(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, product)
	return nil
}

// Update replaces the stored product with the same ID
func (r *InMemoryProductRepository) Update(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	return ErrProductNotFound
}

// Count returns the number of products in the catalog
func (r *InMemoryProductRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products)
}
