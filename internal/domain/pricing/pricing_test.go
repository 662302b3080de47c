package pricing

import (
	"regexp"
	"testing"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Shipping(t *testing.T) {
	policy := NewPolicy(50, 5.99)

	tests := []struct {
		name     string
		subtotal float64
		want     float64
	}{
		{"empty basket", 0, 0},
		{"below threshold", 49.99, 5.99},
		{"at threshold", 50, 0},
		{"above threshold", 120, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Shipping(entity.NewMoney(tt.subtotal))
			assert.True(t, entity.NewMoney(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestPolicy_Quote(t *testing.T) {
	policy := NewPolicy(50, 5)
	shop := &entity.Shop{IsActive: true, Approved: true}

	lines := []*entity.CartLine{
		{Quantity: 2, Product: &entity.Product{Price: entity.NewMoney(10), IsActive: true, Shop: shop}},
		{Quantity: 1, Product: &entity.Product{Price: entity.NewMoney(15.5), IsActive: true, Shop: shop}},
		{Quantity: 4, Product: &entity.Product{Price: entity.NewMoney(99), IsActive: false, Shop: shop}},
		{Quantity: 1},
	}

	totals := policy.Quote(lines)

	assert.True(t, entity.NewMoney(35.5).Equal(totals.Subtotal))
	assert.True(t, entity.NewMoney(5).Equal(totals.ShippingFee))
	assert.True(t, entity.NewMoney(40.5).Equal(totals.Total))
	assert.Equal(t, 3, totals.ItemCount)
}

func TestPolicy_QuoteItems(t *testing.T) {
	policy := NewPolicy(50, 5)
	items := []*entity.OrderItem{
		{UnitPrice: entity.NewMoney(30), Quantity: 2},
	}

	totals := policy.QuoteItems(items)

	assert.True(t, entity.NewMoney(60).Equal(totals.Total))
	assert.True(t, totals.ShippingFee.IsZero())
	assert.Equal(t, 2, totals.ItemCount)
}

func TestOrderNumberGenerator_Next(t *testing.T) {
	gen := NewOrderNumberGenerator("ord")
	gen.now = func() time.Time { return time.Date(2025, 1, 31, 23, 0, 0, 0, time.UTC) }

	first, err := gen.Next()
	require.NoError(t, err)
	second, err := gen.Next()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-20250131-[A-Z2-9]{6}$`), first)
	assert.NotEqual(t, first, second)
}
