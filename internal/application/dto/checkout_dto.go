package dto

import (
	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/pricing"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
)

// PurchaseResult is the outcome of finalizing a purchase.
// On failure only Message is set.
type PurchaseResult struct {
	// Success indicates the purchase was charged and stock deducted.
	Success bool `json:"success"`

	// TransactionID is the payment transaction, empty on failure.
	TransactionID string `json:"transaction_id,omitempty"`

	// Message is a human-readable outcome.
	Message string `json:"message"`
}

// QuoteResult is a price preview for a stored cart.
type QuoteResult struct {
	CartID     uuid.UUID               `json:"cart_id"`
	CustomerID uuid.UUID               `json:"customer_id"`
	Region     valueobject.Region      `json:"region"`
	Tier       valueobject.LoyaltyTier `json:"tier"`
	Breakdown  pricing.Breakdown       `json:"breakdown"`
}
