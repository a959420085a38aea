package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := valueobject.MustParseMoney("50.00", valueobject.CurrencyBRL)

	p, err := NewProduct("Vase", price, valueobject.CategoryFurniture)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	require.NotNil(t, p.Price)
	assert.True(t, p.Price.Equals(price))

	_, err = NewProduct("", price, valueobject.CategoryFurniture)
	assert.ErrorIs(t, err, ErrInvalidProductName)

	_, err = NewProduct("Vase", valueobject.MustParseMoney("-1", valueobject.CurrencyBRL), valueobject.CategoryFurniture)
	assert.ErrorIs(t, err, ErrInvalidProductPrice)

	_, err = NewProduct("Vase", price, valueobject.Category("toys"))
	assert.ErrorIs(t, err, ErrInvalidProductCategory)
}

func TestProduct_TaxableWeight(t *testing.T) {
	p, err := NewProduct("Box", valueobject.Zero(valueobject.CurrencyBRL), valueobject.CategoryBook)
	require.NoError(t, err)

	ten := decimal.NewFromInt(10)
	p.SetShipping(decimal.NewFromInt(6), valueobject.NewDimensions(ten, ten, decimal.NewFromInt(60)), false)
	assert.True(t, p.TaxableWeight().Equal(decimal.NewFromInt(6)))

	p.SetShipping(decimal.NewFromInt(6), valueobject.NewDimensions(ten, ten, decimal.NewFromInt(600)), false)
	assert.True(t, p.TaxableWeight().Equal(decimal.NewFromInt(10)))
}

func TestCart_ParallelLists(t *testing.T) {
	a := &Product{ID: uuid.New(), Name: "A"}
	b := &Product{ID: uuid.New(), Name: "B"}
	cart := NewCart(uuid.New(), NewCartItem(a, 2), &CartItem{Quantity: 9}, NewCartItem(b, 1))

	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, cart.ProductIDs())
	assert.Equal(t, []int64{2, 1}, cart.Quantities())
	assert.False(t, cart.IsEmpty())
	assert.True(t, NewCart(uuid.New()).IsEmpty())
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Ana", valueobject.RegionNorth, valueobject.TierSilver)
	require.NoError(t, err)
	assert.Equal(t, valueobject.RegionNorth, c.Region)

	_, err = NewCustomer("", valueobject.RegionNorth, valueobject.TierSilver)
	assert.ErrorIs(t, err, ErrInvalidCustomerName)
	_, err = NewCustomer("Ana", "", valueobject.TierSilver)
	assert.ErrorIs(t, err, ErrInvalidCustomerRegion)
	_, err = NewCustomer("Ana", valueobject.RegionNorth, "")
	assert.ErrorIs(t, err, ErrInvalidCustomerTier)
}
