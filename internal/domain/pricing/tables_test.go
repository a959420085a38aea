package pricing

import (
	"fmt"
	"testing"

	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
)

func TestBulkDiscountRate(t *testing.T) {
	tests := []struct {
		units int64
		want  string
	}{
		{0, "0"}, {1, "0"}, {2, "0"},
		{3, "0.05"}, {4, "0.05"},
		{5, "0.10"}, {7, "0.10"},
		{8, "0.15"}, {100, "0.15"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d units", tt.units), func(t *testing.T) {
			assert.True(t, BulkDiscountRate(tt.units).Equal(dec(tt.want)))
		})
	}
}

func TestValueDiscountRate(t *testing.T) {
	tests := []struct {
		subtotal string
		want     string
	}{
		{"0", "0"},
		{"500.00", "0"},
		{"500.01", "0.10"},
		{"1000.00", "0.10"},
		{"1000.01", "0.20"},
		{"99999", "0.20"},
	}
	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			assert.True(t, ValueDiscountRate(dec(tt.subtotal)).Equal(dec(tt.want)))
		})
	}
}

func TestBaseFreight(t *testing.T) {
	tests := []struct {
		weight string
		want   string
	}{
		{"0", "0"},
		{"4.99", "0"},
		{"5.00", "0"},
		{"5.01", "22.02"},
		{"6.00", "24.00"},
		{"10.00", "32.00"},
		{"10.01", "52.04"},
		{"50.00", "212.00"},
		{"50.01", "362.07"},
	}
	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			assert.True(t, BaseFreight(dec(tt.weight)).Equal(dec(tt.want)), "got %s", BaseFreight(dec(tt.weight)))
		})
	}
}

func TestCategoryDiscount_IndependentPerCategory(t *testing.T) {
	electronics := product("Cable", "10.00", "0.5", "1", "1", "1", false, valueobject.CategoryElectronics)
	books := product("Novel", "20.00", "0.5", "1", "1", "1", false, valueobject.CategoryBook)

	items := cart(item(electronics, 3), item(books, 5)).Items

	// 30.00 × 5% + 100.00 × 10%
	assert.True(t, CategoryDiscount(items).Equal(dec("11.5")))
}

func TestCategoryDiscount_GroupsItemsOfSameCategory(t *testing.T) {
	a := product("A", "10.00", "0.5", "1", "1", "1", false, valueobject.CategoryFood)
	b := product("B", "30.00", "0.5", "1", "1", "1", false, valueobject.CategoryFood)

	// 2 + 1 units of FOOD reach the 3-unit tier together: (20 + 30) × 5%
	assert.True(t, CategoryDiscount(cart(item(a, 2), item(b, 1)).Items).Equal(dec("2.5")))
}

func TestCategoryDiscount_Bounds(t *testing.T) {
	for qty := int64(1); qty <= 20; qty++ {
		items := cart(item(defaultProduct(), qty)).Items
		discount := CategoryDiscount(items)

		assert.False(t, discount.IsNegative(), "qty %d", qty)
		assert.True(t, discount.LessThanOrEqual(Subtotal(items)), "qty %d", qty)
	}
}

func TestTotalWeight(t *testing.T) {
	heavy := product("Dumbbell", "1", "6.0", "10", "10", "60", false, valueobject.CategoryClothing)
	bulky := product("Pillow", "1", "0.2", "50", "40", "30", false, valueobject.CategoryClothing)

	// 6.0 × 2 + max(0.2, 60000/6000 = 10) × 1
	assert.True(t, TotalWeight(cart(item(heavy, 2), item(bulky, 1)).Items).Equal(dec("22")))
}

func TestFragileSurcharge(t *testing.T) {
	glass := product("Glass", "1", "1", "1", "1", "1", true, valueobject.CategoryFood)
	plate := product("Plate", "1", "1", "1", "1", "1", true, valueobject.CategoryFood)

	items := cart(item(glass, 2), item(defaultProduct(), 4), item(plate, 1)).Items
	assert.True(t, FragileSurcharge(items).Equal(dec("15.00")))
}
