package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hapkiduki/checkout-go/internal/domain/entity"
	"github.com/hapkiduki/checkout-go/internal/domain/repository"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const selectCart = `
SELECT created_at
FROM carts
WHERE id = $1 AND customer_id = $2`

// Numeric columns are read as text so no precision is lost on the way to decimal.
const selectCartItems = `
SELECT ci.id, ci.quantity,
       p.id::text, p.name, p.description,
       p.price::text, p.currency, p.category,
       p.weight::text, p.length::text, p.width::text, p.height::text,
       p.fragile
FROM cart_items ci
LEFT JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.position, ci.id`

// CartRepository reads carts and their products from PostgreSQL.
type CartRepository struct {
	db       DB
	currency valueobject.Currency
}

// NewCartRepository creates a CartRepository.
// Prices stored without a currency are read in the given default currency.
func NewCartRepository(db DB, currency valueobject.Currency) *CartRepository {
	return &CartRepository{db: db, currency: currency}
}

// GetByIDAndCustomer retrieves a cart owned by the given customer with its items.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - cartID: The cart's UUID
//   - customerID: The owner's UUID
//
// Returns:
//   - *entity.Cart: the cart, items in stored order
//   - error: repository.ErrCartNotFound when the cart does not exist for that customer
func (r *CartRepository) GetByIDAndCustomer(ctx context.Context, cartID, customerID uuid.UUID) (*entity.Cart, error) {
	var createdAt time.Time
	err := r.db.QueryRow(ctx, selectCart, cartID, customerID).Scan(&createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query cart %s: %w", cartID, err)
	}

	rows, err := r.db.Query(ctx, selectCartItems, cartID)
	if err != nil {
		return nil, fmt.Errorf("query cart items %s: %w", cartID, err)
	}
	defer rows.Close()

	cart := &entity.Cart{
		ID:         cartID,
		CustomerID: customerID,
		CreatedAt:  createdAt,
	}
	for rows.Next() {
		var row itemRow
		if err := rows.Scan(
			&row.ID, &row.Quantity,
			&row.ProductID, &row.Name, &row.Description,
			&row.Price, &row.Currency, &row.Category,
			&row.Weight, &row.Length, &row.Width, &row.Height,
			&row.Fragile,
		); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		item, err := row.toEntity(r.currency)
		if err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart items: %w", err)
	}
	return cart, nil
}

// itemRow is one cart_items row joined with its product. Product columns are
// nullable because the join is outer and the catalog may be incomplete.
type itemRow struct {
	ID          uuid.UUID
	Quantity    int64
	ProductID   *string
	Name        *string
	Description *string
	Price       *string
	Currency    *string
	Category    *string
	Weight      *string
	Length      *string
	Width       *string
	Height      *string
	Fragile     *bool
}

// toEntity maps the row to a cart item. Missing product columns become nil or
// zero values, which the pricing validator reports.
func (row itemRow) toEntity(defaultCurrency valueobject.Currency) (*entity.CartItem, error) {
	item := &entity.CartItem{ID: row.ID, Quantity: row.Quantity}
	if row.ProductID == nil {
		return item, nil
	}

	productID, err := uuid.Parse(*row.ProductID)
	if err != nil {
		return nil, fmt.Errorf("parse product id %q: %w", *row.ProductID, err)
	}

	product := &entity.Product{
		ID:          productID,
		Name:        deref(row.Name),
		Description: deref(row.Description),
		Category:    valueobject.Category(deref(row.Category)),
		Fragile:     row.Fragile != nil && *row.Fragile,
	}

	if row.Price != nil {
		currency := defaultCurrency
		if row.Currency != nil && *row.Currency != "" {
			currency = valueobject.Currency(*row.Currency)
		}
		amount, err := decimal.NewFromString(*row.Price)
		if err != nil {
			return nil, fmt.Errorf("parse price of product %s: %w", productID, err)
		}
		price := valueobject.NewMoney(amount, currency)
		product.Price = &price
	}

	if product.Weight, err = parseOptional(row.Weight); err != nil {
		return nil, fmt.Errorf("parse weight of product %s: %w", productID, err)
	}
	if product.Dimensions.Length, err = parseOptional(row.Length); err != nil {
		return nil, fmt.Errorf("parse length of product %s: %w", productID, err)
	}
	if product.Dimensions.Width, err = parseOptional(row.Width); err != nil {
		return nil, fmt.Errorf("parse width of product %s: %w", productID, err)
	}
	if product.Dimensions.Height, err = parseOptional(row.Height); err != nil {
		return nil, fmt.Errorf("parse height of product %s: %w", productID, err)
	}

	item.Product = product
	return item, nil
}

func parseOptional(s *string) (decimal.Decimal, error) {
	if s == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
