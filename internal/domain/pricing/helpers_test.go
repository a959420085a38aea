package pricing

import (
	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func product(name, price, weight, l, w, h string, fragile bool, category valueobject.Category) *entity.Product {
	m := valueobject.MustParseMoney(price, valueobject.CurrencyBRL)
	return &entity.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      &m,
		Category:   category,
		Weight:     dec(weight),
		Dimensions: valueobject.NewDimensions(dec(l), dec(w), dec(h)),
		Fragile:    fragile,
	}
}

// defaultProduct is a light, cheap, non-fragile product that triggers no rule.
func defaultProduct() *entity.Product {
	return product("Test product", "10.00", "0.5", "1", "1", "1", false, valueobject.CategoryElectronics)
}

func item(p *entity.Product, qty int64) *entity.CartItem {
	return entity.NewCartItem(p, qty)
}

func cart(items ...*entity.CartItem) *entity.Cart {
	return entity.NewCart(uuid.New(), items...)
}
