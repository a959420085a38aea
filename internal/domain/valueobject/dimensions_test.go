package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dims(l, w, h string) Dimensions {
	return NewDimensions(decimal.RequireFromString(l), decimal.RequireFromString(w), decimal.RequireFromString(h))
}

func TestDimensions_CubicWeight(t *testing.T) {
	assert.True(t, dims("10", "10", "60").CubicWeight().Equal(decimal.NewFromInt(1)))
	assert.True(t, dims("100", "200", "50").CubicWeight().Equal(decimal.RequireFromString("166.6666666667")))
	assert.Equal(t, "0.0001666667", dims("1", "1", "1").CubicWeight().String())
}

func TestDimensions_IsPositive(t *testing.T) {
	assert.True(t, dims("1", "1", "1").IsPositive())
	assert.False(t, dims("0", "1", "1").IsPositive())
	assert.False(t, dims("1", "-1", "1").IsPositive())
	assert.False(t, Dimensions{}.IsPositive())
}

func TestRegion_FreightMultiplier(t *testing.T) {
	tests := map[Region]string{
		RegionSoutheast:   "1.00",
		RegionSouth:       "1.05",
		RegionNortheast:   "1.10",
		RegionCentralWest: "1.20",
		RegionNorth:       "1.30",
		Region("MARS"):    "1.00",
	}
	for region, want := range tests {
		assert.True(t, region.FreightMultiplier().Equal(decimal.RequireFromString(want)), region)
	}
	assert.Len(t, Regions(), 5)
	assert.False(t, Region("").IsValid())
}

func TestLoyaltyTier_ApplyFreightRebate(t *testing.T) {
	freight := decimal.RequireFromString("33.33")

	assert.True(t, TierGold.ApplyFreightRebate(freight).IsZero())
	assert.Equal(t, "16.665", TierSilver.ApplyFreightRebate(freight).String())
	assert.True(t, TierBronze.ApplyFreightRebate(freight).Equal(freight))
	assert.False(t, LoyaltyTier("PLATINUM").IsValid())
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryBook.IsValid())
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("toys").IsValid())
}
