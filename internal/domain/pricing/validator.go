package pricing

import (
	"github.com/hapkiduki/checkout-go/internal/domain/domainerror"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
)

// Validate rejects a cart that cannot be priced. Checks run in a fixed order
// and the first failure is returned, so each message identifies exactly one
// violated precondition.
//
// Parameters:
//   - cart: the cart to price
//   - region: the customer's region
//   - tier: the customer's loyalty tier
//   - currency: the currency every price must be expressed in
//
// Returns:
//   - error: a domainerror.ErrInvalidInput failure, or nil
func Validate(cart *entity.Cart, region valueobject.Region, tier valueobject.LoyaltyTier, currency valueobject.Currency) error {
	if cart == nil {
		return domainerror.InvalidInput("cart cannot be null")
	}
	if cart.IsEmpty() {
		return domainerror.InvalidInput("cart cannot be empty")
	}
	if region == "" {
		return domainerror.InvalidInput("region cannot be null")
	}
	if !region.IsValid() {
		return domainerror.InvalidInput("invalid region: %s", region)
	}
	if tier == "" {
		return domainerror.InvalidInput("customer tier cannot be null")
	}
	if !tier.IsValid() {
		return domainerror.InvalidInput("invalid customer tier: %s", tier)
	}

	for _, item := range cart.Items {
		if err := validateItem(item, currency); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(item *entity.CartItem, currency valueobject.Currency) error {
	if item == nil {
		return domainerror.InvalidInput("cart item cannot be null")
	}
	p := item.Product
	if p == nil {
		return domainerror.InvalidInput("product cannot be null")
	}
	if item.Quantity <= 0 {
		return domainerror.InvalidInput("invalid quantity on product: %s", p.Name)
	}
	if p.Price == nil || p.Price.IsNegative() || p.Price.Currency != currency {
		return domainerror.InvalidInput("invalid price on product: %s", p.Name)
	}
	if !p.Category.IsValid() {
		return domainerror.InvalidInput("invalid category on product: %s", p.Name)
	}
	if !p.Dimensions.IsPositive() {
		return domainerror.InvalidInput("invalid dimensions (must be > 0) on product: %s", p.Name)
	}
	if !p.Weight.IsPositive() {
		return domainerror.InvalidInput("invalid physical weight (must be > 0) on product: %s", p.Name)
	}
	return nil
}
