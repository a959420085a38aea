package memory

import (
	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

// Fixed identifiers of the development data set.
var (
	SeedCustomerID = uuid.MustParse("7f1c2a44-5b0e-4d6a-9c1f-2e8b3a9d0c11")
	SeedCartID     = uuid.MustParse("3b9e6f0a-8d21-4c57-a4e2-61f0d7c5b822")
)

// Seed fills the repositories with one customer and a cart, so a local
// instance without a database can serve requests.
func Seed(customers *CustomerRepository, carts *CartRepository, currency valueobject.Currency) {
	customers.Save(&entity.Customer{
		ID:     SeedCustomerID,
		Name:   "Development Customer",
		Region: valueobject.RegionSoutheast,
		Tier:   valueobject.TierSilver,
	})

	headphones := seedProduct("Headphones", "249.90", currency, valueobject.CategoryElectronics, "0.35", "20", "18", "9", true)
	novel := seedProduct("Novel", "39.90", currency, valueobject.CategoryBook, "0.6", "23", "16", "4", false)

	cart := entity.NewCart(SeedCustomerID,
		entity.NewCartItem(headphones, 1),
		entity.NewCartItem(novel, 3),
	)
	cart.ID = SeedCartID
	carts.Save(cart)
}

func seedProduct(name, price string, currency valueobject.Currency, category valueobject.Category, weight, length, width, height string, fragile bool) *entity.Product {
	p, err := entity.NewProduct(name, valueobject.MustParseMoney(price, currency), category)
	if err != nil {
		panic(err)
	}
	p.SetShipping(
		decimal.RequireFromString(weight),
		valueobject.NewDimensions(
			decimal.RequireFromString(length),
			decimal.RequireFromString(width),
			decimal.RequireFromString(height),
		),
		fragile,
	)
	return p
}
