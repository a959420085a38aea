package pricing

import "github.com/shopspring/decimal"

// Business-rule tables. Each table is ordered so the first matching row wins;
// the comparison used by each lookup is fixed in its function.

// bulkTier grants Rate when a category totals at least MinUnits units.
type bulkTier struct {
	MinUnits int64
	Rate     decimal.Decimal
}

// bulkTiers is ordered from the largest threshold down.
var bulkTiers = []bulkTier{
	{MinUnits: 8, Rate: decimal.RequireFromString("0.15")},
	{MinUnits: 5, Rate: decimal.RequireFromString("0.10")},
	{MinUnits: 3, Rate: decimal.RequireFromString("0.05")},
}

// valueTier grants Rate when the subtotal is strictly above Above.
type valueTier struct {
	Above decimal.Decimal
	Rate  decimal.Decimal
}

// valueTiers is ordered from the largest threshold down.
var valueTiers = []valueTier{
	{Above: decimal.RequireFromString("1000.00"), Rate: decimal.RequireFromString("0.20")},
	{Above: decimal.RequireFromString("500.00"), Rate: decimal.RequireFromString("0.10")},
}

// freightTier prices weights up to and including UpTo as weight × PerKg + Flat.
// A tier with Unbounded set catches every remaining weight.
type freightTier struct {
	UpTo      decimal.Decimal
	Unbounded bool
	PerKg     decimal.Decimal
	Flat      decimal.Decimal
	Exempt    bool
}

var freightHandlingFee = decimal.RequireFromString("12.00")

// freightTiers is ordered from the lightest tier up.
var freightTiers = []freightTier{
	{UpTo: decimal.RequireFromString("5.00"), Exempt: true},
	{UpTo: decimal.RequireFromString("10.00"), PerKg: decimal.RequireFromString("2.00"), Flat: freightHandlingFee},
	{UpTo: decimal.RequireFromString("50.00"), PerKg: decimal.RequireFromString("4.00"), Flat: freightHandlingFee},
	{Unbounded: true, PerKg: decimal.RequireFromString("7.00"), Flat: freightHandlingFee},
}

// fragileSurchargePerUnit is added to freight for every fragile unit.
var fragileSurchargePerUnit = decimal.RequireFromString("5.00")

// BulkDiscountRate returns the discount fraction for a category holding units items.
func BulkDiscountRate(units int64) decimal.Decimal {
	for _, tier := range bulkTiers {
		if units >= tier.MinUnits {
			return tier.Rate
		}
	}
	return decimal.Zero
}

// ValueDiscountRate returns the whole-cart discount fraction for subtotal.
// Thresholds are exclusive: exactly 500.00 gets nothing, exactly 1000.00 gets 10%.
func ValueDiscountRate(subtotal decimal.Decimal) decimal.Decimal {
	for _, tier := range valueTiers {
		if subtotal.GreaterThan(tier.Above) {
			return tier.Rate
		}
	}
	return decimal.Zero
}

// lookupFreightTier returns the tier for weight. Upper bounds are inclusive.
func lookupFreightTier(weight decimal.Decimal) freightTier {
	for _, tier := range freightTiers {
		if tier.Unbounded || weight.LessThanOrEqual(tier.UpTo) {
			return tier
		}
	}
	return freightTiers[len(freightTiers)-1]
}
