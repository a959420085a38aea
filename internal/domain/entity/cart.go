package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of a cart: a product and how many units of it.
type CartItem struct {
	// ID is the unique identifier for the line
	ID uuid.UUID `json:"id"`

	// Product is the referenced product; nil when it could not be resolved
	Product *Product `json:"product"`

	// Quantity is the number of units, must be positive
	Quantity int64 `json:"quantity"`
}

// NewCartItem creates a cart line for the product.
func NewCartItem(product *Product, quantity int64) *CartItem {
	return &CartItem{
		ID:       uuid.New(),
		Product:  product,
		Quantity: quantity,
	}
}

// Cart is an ordered collection of items owned by a customer.
type Cart struct {
	// ID is the unique identifier for the cart
	ID uuid.UUID `json:"id"`

	// CustomerID is the owner of the cart
	CustomerID uuid.UUID `json:"customer_id"`

	// Items in insertion order
	Items []*CartItem `json:"items"`

	// CreatedAt is the timestamp when the cart was created
	CreatedAt time.Time `json:"created_at"`
}

// NewCart creates a cart for the customer holding the given items.
//
// Parameters:
//   - customerID: the owner of the cart
//   - items: cart lines, in order
//
// Returns:
//   - *Cart: the new cart
func NewCart(customerID uuid.UUID, items ...*CartItem) *Cart {
	return &Cart{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items:      items,
		CreatedAt:  time.Now().UTC(),
	}
}

// ProductIDs returns the product identifiers of the items, in item order.
// Items without a product are skipped, so the result stays parallel with Quantities.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		if item == nil || item.Product == nil {
			continue
		}
		ids = append(ids, item.Product.ID)
	}
	return ids
}

// Quantities returns the requested quantities, parallel to ProductIDs.
func (c *Cart) Quantities() []int64 {
	qtys := make([]int64, 0, len(c.Items))
	for _, item := range c.Items {
		if item == nil || item.Product == nil {
			continue
		}
		qtys = append(qtys, item.Quantity)
	}
	return qtys
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
