package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLine_LineTotal(t *testing.T) {
	visibleShop := &Shop{IsActive: true, Approved: true}

	t.Run("available line", func(t *testing.T) {
		line := &CartLine{
			Quantity: 3,
			Product:  &Product{Price: NewMoney(12.5), IsActive: true, Shop: visibleShop},
		}
		assert.True(t, line.IsAvailable())
		assert.True(t, NewMoney(37.5).Equal(line.LineTotal()))
	})

	t.Run("deleted product", func(t *testing.T) {
		line := &CartLine{Quantity: 1}
		assert.False(t, line.IsAvailable())
		assert.True(t, line.LineTotal().IsZero())
	})

	t.Run("shop deactivated", func(t *testing.T) {
		line := &CartLine{
			Quantity: 1,
			Product:  &Product{Price: NewMoney(10), IsActive: true, Shop: &Shop{Approved: true}},
		}
		assert.False(t, line.IsAvailable())
		assert.True(t, line.LineTotal().IsZero())
	})

	t.Run("variant no longer offered", func(t *testing.T) {
		line := &CartLine{
			Quantity: 1,
			Size:     "XL",
			Product:  &Product{Price: NewMoney(10), IsActive: true, Sizes: []string{"S"}, Shop: visibleShop},
		}
		assert.False(t, line.IsAvailable())
	})
}
