package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"

	"github.com/shoplite/api/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) int
}

// InMemoryUserRepository implements UserRepository with in-memory storage.
// A bloom filter fronts email lookups: login attempts for addresses that were
// never registered fail without scanning the collection. False positives fall
// through to the scan, so results are always exact.
type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	emails *bloom.BloomFilter
}

// NewInMemoryUserRepository creates an empty in-memory user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  make([]models.User, 0),
		emails: bloom.NewWithEstimates(10000, 0.01),
	}
}

// Create appends a new user to the collection
func (r *InMemoryUserRepository) Create(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)
	r.emails.AddString(user.Email)
	return nil
}

// GetByEmail returns the first user with an exact email match
func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.emails.TestString(email) {
		return nil, ErrUserNotFound
	}

	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID returns a user by its ID
func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// Count returns the number of registered users
func (r *InMemoryUserRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
