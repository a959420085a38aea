package pricing

import (
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

// Subtotal sums price × quantity over items, unrounded.
// Items must have passed Validate.
func Subtotal(items []*entity.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(lineAmount(item))
	}
	return total
}

// CategoryDiscount computes the bulk discount of every category
// independently against that category's own subtotal and returns their sum.
// The sum is subtracted once from the cart subtotal; discounts never compound.
func CategoryDiscount(items []*entity.CartItem) decimal.Decimal {
	units := make(map[valueobject.Category]int64)
	subtotals := make(map[valueobject.Category]decimal.Decimal)
	for _, item := range items {
		c := item.Product.Category
		units[c] += item.Quantity
		subtotals[c] = subtotals[c].Add(lineAmount(item))
	}

	discount := decimal.Zero
	for c, n := range units {
		rate := BulkDiscountRate(n)
		if rate.IsZero() {
			continue
		}
		discount = discount.Add(subtotals[c].Mul(rate))
	}
	return discount
}

// ValueDiscount returns the whole-cart discount for a subtotal that already
// has the category discount applied.
func ValueDiscount(subtotalAfterCategory decimal.Decimal) decimal.Decimal {
	return subtotalAfterCategory.Mul(ValueDiscountRate(subtotalAfterCategory))
}

func lineAmount(item *entity.CartItem) decimal.Decimal {
	return item.Product.Price.MultiplyQuantity(item.Quantity).Amount
}
