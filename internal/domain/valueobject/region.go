package valueobject

import "github.com/shopspring/decimal"

// Region is the customer's delivery region. Each region scales freight
// by a fixed multiplier.
type Region string

const (
	RegionSoutheast   Region = "SOUTHEAST"
	RegionSouth       Region = "SOUTH"
	RegionNortheast   Region = "NORTHEAST"
	RegionCentralWest Region = "CENTRAL_WEST"
	RegionNorth       Region = "NORTH"
)

var regionMultipliers = map[Region]decimal.Decimal{
	RegionSoutheast:   decimal.RequireFromString("1.00"),
	RegionSouth:       decimal.RequireFromString("1.05"),
	RegionNortheast:   decimal.RequireFromString("1.10"),
	RegionCentralWest: decimal.RequireFromString("1.20"),
	RegionNorth:       decimal.RequireFromString("1.30"),
}

// IsValid reports whether r is one of the known regions.
func (r Region) IsValid() bool {
	_, ok := regionMultipliers[r]
	return ok
}

// FreightMultiplier returns the factor applied to freight for the region.
// Unknown regions fall back to the Southeast factor.
func (r Region) FreightMultiplier() decimal.Decimal {
	if m, ok := regionMultipliers[r]; ok {
		return m
	}
	return regionMultipliers[RegionSoutheast]
}

// Regions lists every supported region.
func Regions() []Region {
	return []Region{RegionSoutheast, RegionSouth, RegionNortheast, RegionCentralWest, RegionNorth}
}
