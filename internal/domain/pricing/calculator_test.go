package pricing

import (
	"sync"
	"testing"

	"github.com/hapkiduki/checkout-go/internal/domain/domainerror"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTotal(t *testing.T, c *entity.Cart, region valueobject.Region, tier valueobject.LoyaltyTier, want string) {
	t.Helper()
	total, err := NewCalculator().ComputeTotal(c, region, tier)
	require.NoError(t, err)
	assert.Equal(t, want, total.Amount.StringFixed(2))
	assert.Equal(t, valueobject.CurrencyBRL, total.Currency)
}

func TestComputeTotal_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		cart   *entity.Cart
		region valueobject.Region
		tier   valueobject.LoyaltyTier
		want   string
	}{
		{
			name: "light item ships free",
			cart: cart(item(product("Book", "100.00", "1.00", "10", "10", "10", false, valueobject.CategoryBook), 1)),
			want: "100.00",
		},
		{
			name: "fragile item adds surcharge per unit",
			cart: cart(item(product("Vase", "50.00", "6.00", "30", "20", "10", true, valueobject.CategoryFurniture), 1)),
			want: "79.00",
		},
		{
			name: "physical weight beats smaller cubic weight",
			cart: cart(item(product("Dumbbell", "50.00", "6.0", "10", "10", "60", false, valueobject.CategoryClothing), 1)),
			want: "74.00",
		},
		{
			name: "cubic weight beats smaller physical weight",
			cart: cart(item(product("Pillow", "50.00", "0.2", "10", "10", "600", false, valueobject.CategoryClothing), 1)),
			want: "82.00",
		},
		{
			name: "gold customer pays no freight",
			cart: cart(item(product("Sofa", "500.00", "20.00", "100", "200", "50", false, valueobject.CategoryFurniture), 1)),
			tier: valueobject.TierGold,
			want: "500.00",
		},
		{
			name: "category and value discounts accumulate",
			cart: func() *entity.Cart {
				p := product("ProdA", "200.00", "1.00", "10", "10", "10", false, valueobject.CategoryElectronics)
				return cart(item(p, 3), item(p, 2))
			}(),
			want: "810.00",
		},
		{
			name: "category discounts are summed not compounded",
			cart: cart(
				item(product("Cable", "10.00", "0.5", "1", "1", "1", false, valueobject.CategoryElectronics), 3),
				item(product("Novel", "20.00", "0.5", "1", "1", "1", false, valueobject.CategoryBook), 5),
			),
			want: "118.50",
		},
		{
			name:   "north multiplier",
			cart:   cart(item(product("Dumbbell", "50.00", "6.0", "1", "1", "1", false, valueobject.CategoryClothing), 1)),
			region: valueobject.RegionNorth,
			want:   "81.20",
		},
		{
			name:   "silver halves regional freight",
			cart:   cart(item(product("Dumbbell", "50.00", "6.0", "1", "1", "1", false, valueobject.CategoryClothing), 1)),
			region: valueobject.RegionNorth,
			tier:   valueobject.TierSilver,
			want:   "65.60",
		},
		{
			name:   "surcharge is multiplied by region",
			cart:   cart(item(product("Vase", "50.00", "6.00", "1", "1", "1", true, valueobject.CategoryFurniture), 1)),
			region: valueobject.RegionCentralWest,
			want:   "84.80",
		},
		{
			name:   "gold ignores weight and region",
			cart:   cart(item(product("Anvil", "50.00", "80", "1", "1", "1", true, valueobject.CategoryFurniture), 3)),
			region: valueobject.RegionNorth,
			tier:   valueobject.TierGold,
			want:   "142.50",
		},
		{
			name:   "rounds only the final total",
			cart:   cart(item(product("Crate", "50.00", "6.01", "1", "1", "1", false, valueobject.CategoryFood), 1)),
			region: valueobject.RegionSouth,
			tier:   valueobject.TierSilver,
			want:   "62.61",
		},
		{
			name: "half-up rounding",
			cart: cart(item(product("Pen", "10.005", "0.1", "1", "1", "1", false, valueobject.CategoryBook), 1)),
			want: "10.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := tt.region
			if region == "" {
				region = valueobject.RegionSoutheast
			}
			tier := tt.tier
			if tier == "" {
				tier = valueobject.TierBronze
			}
			assertTotal(t, tt.cart, region, tier, tt.want)
		})
	}
}

func TestComputeTotal_WeightBoundaries(t *testing.T) {
	tests := []struct {
		weight string
		want   string
	}{
		{"5.00", "50.00"},
		{"5.01", "72.02"},
		{"10.00", "82.00"},
		{"10.01", "102.04"},
		{"50.00", "262.00"},
		{"50.50", "415.50"},
	}
	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			p := product("Weight test", "50.00", tt.weight, "1", "1", "1", false, valueobject.CategoryElectronics)
			assertTotal(t, cart(item(p, 1)), valueobject.RegionSoutheast, valueobject.TierBronze, tt.want)
		})
	}
}

func TestComputeTotal_ValueBoundaries(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"499.99", "499.99"},
		{"500.00", "500.00"},
		{"500.01", "450.01"},
		{"1000.00", "900.00"},
		{"1000.01", "800.01"},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			p := product("Expensive", tt.price, "1", "1", "1", "1", false, valueobject.CategoryElectronics)
			assertTotal(t, cart(item(p, 1)), valueobject.RegionSoutheast, valueobject.TierBronze, tt.want)
		})
	}
}

func TestComputeTotal_BulkBoundaries(t *testing.T) {
	tests := []struct {
		qty  int64
		want string
	}{
		{2, "20.00"},
		{3, "28.50"},
		{4, "38.00"},
		{5, "45.00"},
		{7, "63.00"},
		{8, "68.00"},
	}
	for _, tt := range tests {
		p := defaultProduct()
		assertTotal(t, cart(item(p, tt.qty)), valueobject.RegionSoutheast, valueobject.TierBronze, tt.want)
	}
}

func TestComputeTotal_SilverIsHalfOfBronzeFreight(t *testing.T) {
	calc := NewCalculator()
	c := cart(
		item(product("Crate", "80.00", "7.3", "20", "20", "20", true, valueobject.CategoryFood), 2),
		item(product("Lamp", "35.00", "1.1", "40", "30", "30", false, valueobject.CategoryFurniture), 1),
	)

	for _, region := range valueobject.Regions() {
		bronze, err := calc.Quote(c, region, valueobject.TierBronze)
		require.NoError(t, err)
		silver, err := calc.Quote(c, region, valueobject.TierSilver)
		require.NoError(t, err)
		gold, err := calc.Quote(c, region, valueobject.TierGold)
		require.NoError(t, err)

		assert.True(t, silver.FinalFreight.Mul(dec("2")).Sub(bronze.FinalFreight).Abs().LessThan(dec("0.0000001")), region)
		assert.True(t, gold.FinalFreight.IsZero(), region)
		assert.True(t, gold.Total.Amount.Equal(bronze.SubtotalFinal.Round(2)), region)
	}
}

func TestComputeTotal_IsDeterministicAndOrderIndependent(t *testing.T) {
	a := product("A", "12.34", "2.2", "30", "30", "30", true, valueobject.CategoryFood)
	b := product("B", "99.90", "0.3", "5", "5", "5", false, valueobject.CategoryBook)
	c := product("C", "250.00", "4.4", "60", "40", "20", false, valueobject.CategoryBook)

	calc := NewCalculator()
	first, err := calc.ComputeTotal(cart(item(a, 2), item(b, 3), item(c, 1)), valueobject.RegionNortheast, valueobject.TierSilver)
	require.NoError(t, err)

	permutations := [][]*entity.CartItem{
		{item(b, 3), item(a, 2), item(c, 1)},
		{item(c, 1), item(b, 3), item(a, 2)},
		{item(c, 1), item(a, 2), item(b, 3)},
	}
	for _, items := range permutations {
		got, err := calc.ComputeTotal(cart(items...), valueobject.RegionNortheast, valueobject.TierSilver)
		require.NoError(t, err)
		assert.True(t, first.Equals(got), "%s != %s", first, got)
		assert.True(t, calc.ComputeSubtotal(items).Equal(dec("574.38")))
	}
}

func TestComputeTotal_ConcurrentCallers(t *testing.T) {
	calc := NewCalculator()
	c := cart(item(product("Vase", "50.00", "6.00", "30", "20", "10", true, valueobject.CategoryFurniture), 1))

	var wg sync.WaitGroup
	results := make([]valueobject.Money, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = calc.ComputeTotal(c, valueobject.RegionSoutheast, valueobject.TierBronze)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "79.00", r.Amount.StringFixed(2))
	}
}

func TestComputeTotal_InvalidInputReturnsNoTotal(t *testing.T) {
	total, err := NewCalculator().ComputeTotal(nil, valueobject.RegionSoutheast, valueobject.TierBronze)

	require.Error(t, err)
	assert.True(t, domainerror.IsInvalidInput(err))
	assert.Equal(t, "cart cannot be null", err.Error())
	assert.True(t, total.IsZero())
}

func TestQuote_Breakdown(t *testing.T) {
	c := cart(item(product("Vase", "50.00", "6.00", "30", "20", "10", true, valueobject.CategoryFurniture), 1))

	b, err := NewCalculator().Quote(c, valueobject.RegionSouth, valueobject.TierBronze)
	require.NoError(t, err)

	assert.True(t, b.Subtotal.Equal(dec("50")))
	assert.True(t, b.CategoryDiscount.IsZero())
	assert.True(t, b.ValueDiscount.IsZero())
	assert.True(t, b.TotalWeight.Equal(dec("6")))
	assert.True(t, b.BaseFreight.Equal(dec("24")))
	assert.True(t, b.FragileSurcharge.Equal(dec("5")))
	assert.True(t, b.RegionalFreight.Equal(dec("30.45")))
	assert.True(t, b.FinalFreight.Equal(dec("30.45")))
	assert.Equal(t, "80.45", b.Total.Amount.StringFixed(2))
}

func TestCalculator_WithCurrency(t *testing.T) {
	calc := NewCalculator(WithCurrency(valueobject.CurrencyUSD))
	assert.Equal(t, valueobject.CurrencyUSD, calc.Currency())

	_, err := calc.ComputeTotal(cart(item(defaultProduct(), 1)), valueobject.RegionSoutheast, valueobject.TierBronze)
	assert.EqualError(t, err, "invalid price on product: Test product")
}
