package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/repository"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/jackc/pgx/v5"
)

const selectCustomer = `
SELECT name, region, tier
FROM customers
WHERE id = $1`

// CustomerRepository reads customers from PostgreSQL.
type CustomerRepository struct {
	db DB
}

// NewCustomerRepository creates a CustomerRepository on the given pool.
func NewCustomerRepository(db DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetByID retrieves a customer by its unique identifier.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - id: The customer's UUID
//
// Returns:
//   - *entity.Customer: the stored customer
//   - error: repository.ErrCustomerNotFound when no row matches
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var name, region, tier string
	err := r.db.QueryRow(ctx, selectCustomer, id).Scan(&name, &region, &tier)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query customer %s: %w", id, err)
	}

	// Stored values are passed through; the pricing validator rejects unknown ones.
	return &entity.Customer{
		ID:     id,
		Name:   name,
		Region: valueobject.Region(region),
		Tier:   valueobject.LoyaltyTier(tier),
	}, nil
}
