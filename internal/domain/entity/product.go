package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item owned by a shop.
type Product struct {
	ID             uuid.UUID
	ShopID         uuid.UUID
	Name           string
	Description    string
	Price          Money
	CompareAtPrice *Money // Optional original price, shown struck through.
	Category       string
	ImageURL       string
	Images         []string
	StockQuantity  int
	IsActive       bool
	Sizes          []string
	Colors         []string
	Rating         float64
	TotalReviews   int
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Shop *Shop // Parent shop, populated on joined reads.
}

// IsPubliclyVisible reports whether the product may be listed publicly.
// The parent shop must be loaded; a product without a known shop is never visible.
func (p *Product) IsPubliclyVisible() bool {
	return p.IsActive && p.Shop != nil && p.Shop.IsPubliclyVisible()
}

// DiscountPercent returns the rounded percentage off the compare-at price, or 0 when there is none.
// The value is for display only.
func (p *Product) DiscountPercent() int {
	if p.CompareAtPrice == nil || !p.CompareAtPrice.IsPositive() || p.CompareAtPrice.LessThanOrEqual(p.Price) {
		return 0
	}

	compare := *p.CompareAtPrice
	percent := compare.Sub(p.Price).Div(compare).Mul(MoneyFromInt(100)).Round(0)

	return int(percent.IntPart())
}

// AcceptsVariant reports whether size and color are selectable for this product.
// An empty variant set accepts only the empty selection.
func (p *Product) AcceptsVariant(size, color string) bool {
	return acceptsOption(p.Sizes, size) && acceptsOption(p.Colors, color)
}

// HasStock reports whether quantity units can be sold.
func (p *Product) HasStock(quantity int) bool {
	return p.StockQuantity >= quantity
}

func acceptsOption(options []string, selected string) bool {
	if len(options) == 0 {
		return selected == ""
	}

	return slices.Contains(options, selected)
}
