package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/application/port"
)

// StockClient talks to the inventory service.
type StockClient struct {
	client jsonClient
}

// NewStockClient creates a StockClient for the service at baseURL.
// A nil httpClient uses NewHTTPClient defaults.
func NewStockClient(baseURL string, httpClient *http.Client) *StockClient {
	return &StockClient{client: newJSONClient(baseURL, httpClient)}
}

type stockRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
	Quantities []int64     `json:"quantities"`
}

type availabilityResponse struct {
	Available             bool        `json:"available"`
	UnavailableProductIDs []uuid.UUID `json:"unavailable_product_ids"`
}

type deductionResponse struct {
	Success bool `json:"success"`
}

// CheckAvailability reports whether every quantity can be served.
func (c *StockClient) CheckAvailability(ctx context.Context, productIDs []uuid.UUID, quantities []int64) (port.Availability, error) {
	var resp availabilityResponse
	if err := c.client.post(ctx, stockRequest{ProductIDs: productIDs, Quantities: quantities}, &resp, "availability"); err != nil {
		return port.Availability{}, fmt.Errorf("check availability: %w", err)
	}
	return port.Availability{
		Available:   resp.Available,
		Unavailable: resp.UnavailableProductIDs,
	}, nil
}

// Deduct removes the quantities from stock.
func (c *StockClient) Deduct(ctx context.Context, productIDs []uuid.UUID, quantities []int64) (bool, error) {
	var resp deductionResponse
	if err := c.client.post(ctx, stockRequest{ProductIDs: productIDs, Quantities: quantities}, &resp, "deductions"); err != nil {
		return false, fmt.Errorf("deduct stock: %w", err)
	}
	return resp.Success, nil
}
