// Package pricing turns a cart plus customer attributes into the amount to
// charge. It is a pure, stateless pipeline:
//
//	validate → subtotal → category discount → value discount →
//	taxable weight → base freight → fragile surcharge →
//	regional multiplier → loyalty rebate → total
//
// Every stage keeps full decimal precision. The total is the only value
// rounded (two digits, half-up).
//
// A Calculator holds no mutable state and may be shared by any number of
// goroutines.
package pricing

import (
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

// Breakdown exposes every intermediate value of a pricing run.
type Breakdown struct {
	Subtotal              decimal.Decimal `json:"subtotal"`
	CategoryDiscount      decimal.Decimal `json:"category_discount"`
	SubtotalAfterCategory decimal.Decimal `json:"subtotal_after_category"`
	ValueDiscount         decimal.Decimal `json:"value_discount"`
	SubtotalFinal         decimal.Decimal `json:"subtotal_final"`
	TotalWeight           decimal.Decimal `json:"total_weight"`
	BaseFreight           decimal.Decimal `json:"base_freight"`
	FragileSurcharge      decimal.Decimal `json:"fragile_surcharge"`
	RegionalFreight       decimal.Decimal `json:"regional_freight"`
	FinalFreight          decimal.Decimal `json:"final_freight"`

	// Total is SubtotalFinal + FinalFreight rounded to currency precision.
	Total valueobject.Money `json:"total"`
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithCurrency sets the currency prices must be expressed in. Defaults to BRL.
func WithCurrency(c valueobject.Currency) Option {
	return func(calc *Calculator) {
		calc.currency = c
	}
}

// Calculator prices carts.
type Calculator struct {
	currency valueobject.Currency
}

// NewCalculator creates a Calculator.
//
// Parameters:
//   - opts: optional settings
//
// Returns:
//   - *Calculator: ready to use calculator
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{currency: valueobject.CurrencyBRL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Currency returns the currency the calculator charges in.
func (c *Calculator) Currency() valueobject.Currency {
	return c.currency
}

// ComputeTotal returns the amount to charge for the cart.
//
// Parameters:
//   - cart: cart with resolved products
//   - region: customer region
//   - tier: customer loyalty tier
//
// Returns:
//   - valueobject.Money: total rounded to two digits
//   - error: domainerror.ErrInvalidInput failure when the input is malformed
func (c *Calculator) ComputeTotal(cart *entity.Cart, region valueobject.Region, tier valueobject.LoyaltyTier) (valueobject.Money, error) {
	b, err := c.Quote(cart, region, tier)
	if err != nil {
		return valueobject.Money{}, err
	}
	return b.Total, nil
}

// ComputeSubtotal returns Σ price × quantity, unrounded. Items are not
// validated; callers pass items that already passed Validate.
func (c *Calculator) ComputeSubtotal(items []*entity.CartItem) decimal.Decimal {
	return Subtotal(items)
}

// Quote runs the full pipeline and returns every stage's result.
// Nothing is computed when validation fails.
//
// Parameters:
//   - cart: cart with resolved products
//   - region: customer region
//   - tier: customer loyalty tier
//
// Returns:
//   - Breakdown: intermediate values and the rounded total
//   - error: domainerror.ErrInvalidInput failure when the input is malformed
func (c *Calculator) Quote(cart *entity.Cart, region valueobject.Region, tier valueobject.LoyaltyTier) (Breakdown, error) {
	if err := Validate(cart, region, tier, c.currency); err != nil {
		return Breakdown{}, err
	}
	items := cart.Items

	var b Breakdown
	b.Subtotal = Subtotal(items)
	b.CategoryDiscount = CategoryDiscount(items)
	b.SubtotalAfterCategory = b.Subtotal.Sub(b.CategoryDiscount)
	b.ValueDiscount = ValueDiscount(b.SubtotalAfterCategory)
	b.SubtotalFinal = b.SubtotalAfterCategory.Sub(b.ValueDiscount)

	b.TotalWeight = TotalWeight(items)
	b.BaseFreight = BaseFreight(b.TotalWeight)
	b.FragileSurcharge = FragileSurcharge(items)
	b.RegionalFreight = RegionalFreight(b.BaseFreight.Add(b.FragileSurcharge), region)
	b.FinalFreight = LoyaltyFreight(b.RegionalFreight, tier)

	b.Total = valueobject.NewMoney(b.SubtotalFinal.Add(b.FinalFreight), c.currency).Round()
	return b, nil
}
