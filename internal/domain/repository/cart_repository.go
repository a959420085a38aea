package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
)

// CartRepository defines the read access checkout needs to carts.
// Carts are returned with their items and products fully resolved.
type CartRepository interface {
	// GetByIDAndCustomer retrieves a cart owned by the given customer.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - cartID: The cart's UUID
	//   - customerID: The owner's UUID
	//
	// Returns:
	//   - *entity.Cart: The cart with items and products loaded
	//   - error: ErrCartNotFound if no such cart belongs to the customer
	GetByIDAndCustomer(ctx context.Context, cartID, customerID uuid.UUID) (*entity.Cart, error)
}
