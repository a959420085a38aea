package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Availability is the stock service's answer to an availability check.
type Availability struct {
	// Available is true when every requested quantity can be served.
	Available bool

	// Unavailable lists the products that cannot be served.
	Unavailable []uuid.UUID
}

// Authorization is the payment service's answer to an authorization request.
type Authorization struct {
	// Authorized is true when the charge was accepted.
	Authorized bool

	// TransactionID identifies the charge for later cancellation.
	TransactionID string
}

// StockGateway is the external inventory service.
// productIDs and quantities are parallel lists.
type StockGateway interface {
	// CheckAvailability reports whether every quantity can be served.
	CheckAvailability(ctx context.Context, productIDs []uuid.UUID, quantities []int64) (Availability, error)

	// Deduct removes the quantities from stock. It returns false when the
	// service refused the deduction.
	Deduct(ctx context.Context, productIDs []uuid.UUID, quantities []int64) (bool, error)
}

// PaymentGateway is the external payment service.
type PaymentGateway interface {
	// Authorize requests a charge of amount for the customer.
	Authorize(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) (Authorization, error)

	// Cancel voids a previous authorization. It is a compensating action;
	// the returned error is only reported, never acted upon.
	Cancel(ctx context.Context, customerID uuid.UUID, transactionID string) error
}
