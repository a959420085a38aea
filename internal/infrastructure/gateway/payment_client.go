package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/application/port"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentClient talks to the payment service.
type PaymentClient struct {
	client jsonClient
}

// NewPaymentClient creates a PaymentClient for the service at baseURL.
// A nil httpClient uses NewHTTPClient defaults.
func NewPaymentClient(baseURL string, httpClient *http.Client) *PaymentClient {
	return &PaymentClient{client: newJSONClient(baseURL, httpClient)}
}

type authorizationRequest struct {
	CustomerID uuid.UUID   `json:"customer_id"`
	Amount     json.Number `json:"amount"`
}

type authorizationResponse struct {
	Authorized    bool   `json:"authorized"`
	TransactionID string `json:"transaction_id"`
}

type cancelRequest struct {
	CustomerID uuid.UUID `json:"customer_id"`
}

// Authorize requests a charge of amount for the customer.
// The amount is sent as a JSON number with currency precision.
func (c *PaymentClient) Authorize(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal) (port.Authorization, error) {
	req := authorizationRequest{
		CustomerID: customerID,
		Amount:     json.Number(amount.StringFixed(valueobject.CurrencyPrecision)),
	}
	var resp authorizationResponse
	if err := c.client.post(ctx, req, &resp, "authorizations"); err != nil {
		return port.Authorization{}, fmt.Errorf("authorize payment: %w", err)
	}
	return port.Authorization{
		Authorized:    resp.Authorized,
		TransactionID: resp.TransactionID,
	}, nil
}

// Cancel voids a previous authorization.
func (c *PaymentClient) Cancel(ctx context.Context, customerID uuid.UUID, transactionID string) error {
	if err := c.client.post(ctx, cancelRequest{CustomerID: customerID}, nil, "authorizations", transactionID, "cancel"); err != nil {
		return fmt.Errorf("cancel payment %s: %w", transactionID, err)
	}
	return nil
}
