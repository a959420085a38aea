package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
)

// CustomerRepository defines the read access checkout needs to customers.
//
// Example usage:
//
//	repo := postgres.NewCustomerRepository(pool)
//	customer, err := repo.GetByID(ctx, customerID)
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique identifier.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - id: The customer's UUID
	//
	// Returns:
	//   - *entity.Customer: The retrieved customer
	//   - error: ErrCustomerNotFound if customer doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}
