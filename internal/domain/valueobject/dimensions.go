package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WeightPrecision is the number of fractional digits kept by weight divisions.
const WeightPrecision int32 = 10

// volumetricDivisor converts cm³ to kg for freight pricing.
var volumetricDivisor = decimal.NewFromInt(6000)

// Dimensions represents the physical dimensions for shipping calculations.
// All measurements are in centimeters.
type Dimensions struct {
	// Length in centimeters.
	Length decimal.Decimal `json:"length"`

	// Width in centimeters.
	Width decimal.Decimal `json:"width"`

	// Height in centimeters.
	Height decimal.Decimal `json:"height"`
}

// NewDimensions creates a new Dimensions value object.
//
// Parameters:
//   - length: Length in centimeters
//   - width: Width in centimeters
//   - height: Height in centimeters
//
// Returns:
//   - Dimensions: new Dimensions value object
func NewDimensions(length, width, height decimal.Decimal) Dimensions {
	return Dimensions{
		Length: length,
		Width:  width,
		Height: height,
	}
}

// Volume calculates the volume in cubic centimeters.
//
// Returns:
//   - decimal.Decimal: volume in cm³
func (d Dimensions) Volume() decimal.Decimal {
	return d.Length.Mul(d.Width).Mul(d.Height)
}

// CubicWeight calculates the volumetric weight for freight pricing
// using a divisor of 6000, kept at WeightPrecision digits.
//
// Returns:
//   - decimal.Decimal: volumetric weight in kg
func (d Dimensions) CubicWeight() decimal.Decimal {
	return d.Volume().DivRound(volumetricDivisor, WeightPrecision)
}

// IsPositive reports whether every dimension is strictly greater than zero.
func (d Dimensions) IsPositive() bool {
	return d.Length.IsPositive() && d.Width.IsPositive() && d.Height.IsPositive()
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted dimensions (e.g., "30x20x10 cm")
func (d Dimensions) String() string {
	return fmt.Sprintf("%sx%sx%s cm", d.Length, d.Width, d.Height)
}
