package valueobject

import "github.com/shopspring/decimal"

// LoyaltyTier is the customer's loyalty level. It determines how much of
// the freight the store absorbs.
type LoyaltyTier string

const (
	TierGold   LoyaltyTier = "GOLD"
	TierSilver LoyaltyTier = "SILVER"
	TierBronze LoyaltyTier = "BRONZE"
)

var silverFreightDivisor = decimal.RequireFromString("2.00")

// IsValid reports whether t is one of the known tiers.
func (t LoyaltyTier) IsValid() bool {
	switch t {
	case TierGold, TierSilver, TierBronze:
		return true
	}
	return false
}

// ApplyFreightRebate returns the freight the customer pays after the tier rebate.
//   - Gold: freight is waived.
//   - Silver: freight is halved, kept at WeightPrecision digits.
//   - Bronze and anything else: unchanged.
func (t LoyaltyTier) ApplyFreightRebate(freight decimal.Decimal) decimal.Decimal {
	switch t {
	case TierGold:
		return decimal.Zero
	case TierSilver:
		return freight.DivRound(silverFreightDivisor, WeightPrecision)
	default:
		return freight
	}
}
