// Package memory provides in-memory implementations of repository interfaces.
// They are used when no database is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/repository"
)

// CustomerRepository stores customers in a map.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*entity.Customer
}

// NewCustomerRepository creates an empty CustomerRepository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[uuid.UUID]*entity.Customer)}
}

// Save inserts or replaces a customer.
func (r *CustomerRepository) Save(customer *entity.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = customer
}

// GetByID retrieves a customer by its unique identifier.
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return customer, nil
}

// CartRepository stores carts in a map.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
}

// NewCartRepository creates an empty CartRepository.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[uuid.UUID]*entity.Cart)}
}

// Save inserts or replaces a cart.
func (r *CartRepository) Save(cart *entity.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = cart
}

// GetByIDAndCustomer retrieves a cart owned by the given customer.
// A cart owned by someone else is reported as not found.
func (r *CartRepository) GetByIDAndCustomer(ctx context.Context, cartID, customerID uuid.UUID) (*entity.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[cartID]
	if !ok || cart.CustomerID != customerID {
		return nil, repository.ErrCartNotFound
	}
	return cart, nil
}
