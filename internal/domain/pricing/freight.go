package pricing

import (
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

// TotalWeight sums each item's taxable weight (max of physical and cubic)
// times its quantity.
func TotalWeight(items []*entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.TaxableWeight().Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// BaseFreight maps a total weight in kg to its tiered freight price.
//
//	weight ≤ 5       exempt
//	5 < weight ≤ 10  weight × 2 + 12
//	10 < weight ≤ 50 weight × 4 + 12
//	weight > 50      weight × 7 + 12
func BaseFreight(weight decimal.Decimal) decimal.Decimal {
	tier := lookupFreightTier(weight)
	if tier.Exempt {
		return decimal.Zero
	}
	return weight.Mul(tier.PerKg).Add(tier.Flat)
}

// FragileSurcharge charges a flat fee per fragile unit.
func FragileSurcharge(items []*entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Product.Fragile {
			total = total.Add(fragileSurchargePerUnit.Mul(decimal.NewFromInt(item.Quantity)))
		}
	}
	return total
}

// RegionalFreight scales freight by the region's multiplier.
func RegionalFreight(freight decimal.Decimal, region valueobject.Region) decimal.Decimal {
	return freight.Mul(region.FreightMultiplier())
}

// LoyaltyFreight applies the tier's freight rebate.
func LoyaltyFreight(freight decimal.Decimal, tier valueobject.LoyaltyTier) decimal.Decimal {
	return tier.ApplyFreightRebate(freight)
}
