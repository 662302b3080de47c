package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func moneyPtr(v float64) *Money {
	m := NewMoney(v)
	return &m
}

func TestProduct_IsPubliclyVisible(t *testing.T) {
	// Visibility is the conjunction of the product flag and both shop flags.
	for _, productActive := range []bool{true, false} {
		for _, shopActive := range []bool{true, false} {
			for _, approved := range []bool{true, false} {
				p := &Product{
					IsActive: productActive,
					Shop:     &Shop{IsActive: shopActive, Approved: approved},
				}
				assert.Equal(t, productActive && shopActive && approved, p.IsPubliclyVisible(),
					"product=%v shop=%v approved=%v", productActive, shopActive, approved)
			}
		}
	}

	assert.False(t, (&Product{IsActive: true}).IsPubliclyVisible(), "unknown shop is never visible")
}

func TestProduct_DiscountPercent(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		compare *Money
		want    int
	}{
		{"no compare price", 100, nil, 0},
		{"quarter off", 75, moneyPtr(100), 25},
		{"rounds to nearest", 66.67, moneyPtr(100), 33},
		{"rounds half up", 49.5, moneyPtr(99), 50},
		{"compare below price", 120, moneyPtr(100), 0},
		{"compare equal to price", 100, moneyPtr(100), 0},
		{"zero compare price", 10, moneyPtr(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: NewMoney(tt.price), CompareAtPrice: tt.compare}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestProduct_AcceptsVariant(t *testing.T) {
	p := &Product{Sizes: []string{"S", "M"}, Colors: []string{"red"}}

	assert.True(t, p.AcceptsVariant("S", "red"))
	assert.False(t, p.AcceptsVariant("", "red"), "size required when sizes are offered")
	assert.False(t, p.AcceptsVariant("XL", "red"))
	assert.False(t, p.AcceptsVariant("M", "blue"))

	plain := &Product{}
	assert.True(t, plain.AcceptsVariant("", ""))
	assert.False(t, plain.AcceptsVariant("S", ""))
}

func TestProduct_HasStock(t *testing.T) {
	p := &Product{StockQuantity: 2}
	assert.True(t, p.HasStock(2))
	assert.False(t, p.HasStock(3))
}
