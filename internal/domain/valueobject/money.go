// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a monetary currency using ISO 4217 codes.
type Currency string

// Supported currencies in the system.
const (
	CurrencyBRL Currency = "BRL" // Brazilian Real
	CurrencyUSD Currency = "USD" // US Dollar
	CurrencyEUR Currency = "EUR" // Euro
)

// CurrencyPrecision is the number of fractional digits a charged amount carries.
const CurrencyPrecision int32 = 2

// Money errors define domain-specific error conditions.
var (
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrInvalidAmount   = errors.New("invalid money amount")
)

// Money represents a monetary value with currency.
// The amount is an arbitrary-precision decimal so intermediate results
// keep every fractional digit until Round is called.
//
// Example usage:
//
//	price := valueobject.MustParseMoney("19.99", valueobject.CurrencyBRL)
//	total := price.MultiplyQuantity(3) // BRL 59.97
type Money struct {
	// Amount in currency units (e.g., 19.99)
	Amount decimal.Decimal `json:"amount"`

	// Currency using ISO 4217 code
	Currency Currency `json:"currency"`
}

// NewMoney creates a new Money value object.
//
// Parameters:
//   - amount: Decimal amount in currency units
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// ParseMoney creates a new Money from its decimal string form.
//
// Parameters:
//   - amount: Decimal amount (e.g., "19.99")
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
//   - error: ErrInvalidAmount if amount is not a decimal number
func ParseMoney(amount string, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, ErrInvalidCurrency
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return NewMoney(d, currency), nil
}

// MustParseMoney is like ParseMoney but panics on error.
// Intended for constants and tests.
func MustParseMoney(amount string, currency Currency) Money {
	m, err := ParseMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns a zero-value Money in the specified currency.
func Zero(currency Currency) Money {
	return NewMoney(decimal.Zero, currency)
}

// IsValid reports whether the currency is supported.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyBRL, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// MultiplyQuantity multiplies the amount by a unit count.
func (m Money) MultiplyQuantity(quantity int64) Money {
	return NewMoney(m.Amount.Mul(decimal.NewFromInt(quantity)), m.Currency)
}

// Round rounds the amount to CurrencyPrecision digits, half-up.
//
// Returns:
//   - Money: the rounded Money value
func (m Money) Round() Money {
	return NewMoney(m.Amount.Round(CurrencyPrecision), m.Currency)
}

// IsZero checks if the Money amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative checks if the Money amount is less than zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Equals checks if two Money values are numerically equal in the same currency.
// 10.0 and 10.00 are equal.
func (m Money) Equals(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String returns a formatted string representation of the Money.
//
// Returns:
//   - string: Formatted string (e.g., "BRL 19.99")
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(CurrencyPrecision))
}
