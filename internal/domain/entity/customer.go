package entity

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
)

// Customer errors define domain-specific error conditions for customers.
var (
	ErrInvalidCustomerName   = errors.New("customer name cannot be empty")
	ErrInvalidCustomerRegion = errors.New("customer region is not supported")
	ErrInvalidCustomerTier   = errors.New("customer tier is not supported")
)

// Customer is the buyer. Region and Tier drive freight pricing.
type Customer struct {
	// ID is the unique identifier for the customer
	ID uuid.UUID `json:"id"`

	// Name is the customer's display name
	Name string `json:"name"`

	// Region is where orders are delivered
	Region valueobject.Region `json:"region"`

	// Tier is the loyalty level
	Tier valueobject.LoyaltyTier `json:"tier"`
}

// NewCustomer creates a new Customer.
//
// Parameters:
//   - name: display name (required)
//   - region: delivery region
//   - tier: loyalty tier
//
// Returns:
//   - *Customer: newly created Customer
//   - error: Validation error if input is invalid
func NewCustomer(name string, region valueobject.Region, tier valueobject.LoyaltyTier) (*Customer, error) {
	if name == "" {
		return nil, ErrInvalidCustomerName
	}
	if !region.IsValid() {
		return nil, ErrInvalidCustomerRegion
	}
	if !tier.IsValid() {
		return nil, ErrInvalidCustomerTier
	}
	return &Customer{
		ID:     uuid.New(),
		Name:   name,
		Region: region,
		Tier:   tier,
	}, nil
}
