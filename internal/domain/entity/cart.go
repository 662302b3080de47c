package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one (product, variant, quantity) entry scoped to one account.
// Size and Color use the empty string for "no selection" so the
// (user, product, size, color) tuple stays unique.
type CartLine struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Size      string
	Color     string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product // Live product with its shop; nil when the product was deleted.
}

// IsAvailable reports whether the line still points at a purchasable product.
func (l *CartLine) IsAvailable() bool {
	return l.Product != nil && l.Product.IsPubliclyVisible() && l.Product.AcceptsVariant(l.Size, l.Color)
}

// LineTotal is the live unit price times quantity, zero for unavailable lines.
func (l *CartLine) LineTotal() Money {
	if !l.IsAvailable() {
		return ZeroMoney
	}

	return l.Product.Price.Mul(MoneyFromInt(l.Quantity))
}
