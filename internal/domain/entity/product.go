// Package entity contains the core bussiness entities of the domain layer.
package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

// Product errors define domain-specific error conditions for products.
var (
	ErrInvalidProductName     = errors.New("product name cannot be empty")
	ErrInvalidProductPrice    = errors.New("product price cannot be negative")
	ErrInvalidProductCategory = errors.New("product category is not supported")
)

// Product is a catalog item as seen by checkout: its price plus the
// attributes freight pricing depends on.
//
// Fields loaded from storage may be missing. A nil Price, an empty Category
// or non-positive measurements are reported by the pricing validator.
type Product struct {
	// ID is the unique identifier for the product
	ID uuid.UUID `json:"id"`

	// Name is the name of the product
	Name string `json:"name"`

	// Description provides details about the product
	Description string `json:"description,omitempty"`

	// Price is the unit selling price; nil when unknown
	Price *valueobject.Money `json:"price"`

	// Category groups products for bulk discounts
	Category valueobject.Category `json:"category"`

	// Weight is the physical mass in kilograms
	Weight decimal.Decimal `json:"weight"`

	// Dimensions for volumetric weight
	Dimensions valueobject.Dimensions `json:"dimensions"`

	// Fragile items pay a handling surcharge per unit
	Fragile bool `json:"fragile"`

	// CreatedAt is the timestamp when the product was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the product was last updated
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProduct creates a new Product entity with the provided details.
//
// Parameters:
//   - name: Name of the product (required)
//   - price: Unit selling price (must not be negative)
//   - category: Product category (must be supported)
//
// Returns:
//   - *Product: newly created Product
//   - error: Validation error if input is invalid
func NewProduct(name string, price valueobject.Money, category valueobject.Category) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidProductName
	}
	if price.IsNegative() {
		return nil, ErrInvalidProductPrice
	}
	if !category.IsValid() {
		return nil, ErrInvalidProductCategory
	}

	now := time.Now().UTC()

	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     &price,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetShipping updates the attributes used by freight pricing.
//
// Parameters:
//   - weight: physical weight in kilograms
//   - dimensions: package dimensions in centimeters
//   - fragile: whether the item needs fragile handling
func (p *Product) SetShipping(weight decimal.Decimal, dimensions valueobject.Dimensions, fragile bool) {
	p.Weight = weight
	p.Dimensions = dimensions
	p.Fragile = fragile
	p.UpdatedAt = time.Now().UTC()
}

// TaxableWeight returns the greater of the physical and cubic weight of one unit.
//
// Returns:
//   - decimal.Decimal: weight in kg used for freight
func (p *Product) TaxableWeight() decimal.Decimal {
	return decimal.Max(p.Weight, p.Dimensions.CubicWeight())
}
