package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to packed", OrderStatusPending, OrderStatusPacked, true},
		{"packed to shipped", OrderStatusPacked, OrderStatusShipped, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"packed to cancelled", OrderStatusPacked, OrderStatusCancelled, true},
		{"shipped to cancelled", OrderStatusShipped, OrderStatusCancelled, true},
		{"pending skips to shipped", OrderStatusPending, OrderStatusShipped, false},
		{"pending skips to delivered", OrderStatusPending, OrderStatusDelivered, false},
		{"shipped back to packed", OrderStatusShipped, OrderStatusPacked, false},
		{"delivered back to packed", OrderStatusDelivered, OrderStatusPacked, false},
		{"delivered to cancelled", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled to pending", OrderStatusCancelled, OrderStatusPending, false},
		{"pending to itself", OrderStatusPending, OrderStatusPending, false},
		{"pending to unknown", OrderStatusPending, OrderStatus("lost"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_Classification(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())

	assert.True(t, OrderStatusPending.IsOngoing())
	assert.True(t, OrderStatusShipped.IsOngoing())
	assert.False(t, OrderStatusDelivered.IsOngoing())

	assert.False(t, OrderStatus("refunded").IsValid())
}

func TestOrderFilter_Statuses(t *testing.T) {
	assert.Nil(t, OrderFilterAll.Statuses())
	assert.Equal(t, []OrderStatus{OrderStatusPending, OrderStatusPacked, OrderStatusShipped}, OrderFilterOngoing.Statuses())
	assert.Equal(t, []OrderStatus{OrderStatusDelivered}, OrderFilterDelivered.Statuses())
	assert.Equal(t, []OrderStatus{OrderStatusCancelled}, OrderFilterCancelled.Statuses())
	assert.False(t, OrderFilter("returned").IsValid())
}

func TestOrder_CanBeViewedBy(t *testing.T) {
	buyerID := uuid.New()
	ownerID := uuid.New()
	shop := &Shop{ID: uuid.New(), OwnerID: ownerID}
	order := &Order{ID: uuid.New(), UserID: buyerID, ShopID: shop.ID}

	assert.True(t, order.CanBeViewedBy(Actor{UserID: buyerID, Role: RoleCustomer}, shop))
	assert.True(t, order.CanBeViewedBy(Actor{UserID: ownerID, Role: RoleShopOwner}, shop))
	assert.True(t, order.CanBeViewedBy(Actor{UserID: uuid.New(), Role: RoleAdmin}, nil))
	assert.False(t, order.CanBeViewedBy(Actor{UserID: uuid.New(), Role: RoleShopOwner}, shop))
	assert.False(t, order.CanBeViewedBy(Actor{UserID: ownerID, Role: RoleShopOwner}, &Shop{ID: uuid.New(), OwnerID: ownerID}))
}

func TestOrderItem_LineTotal(t *testing.T) {
	item := &OrderItem{UnitPrice: NewMoney(19.99), Quantity: 3}
	assert.True(t, NewMoney(59.97).Equal(item.LineTotal()))
}

func TestDeliverySnapshot_HasLocation(t *testing.T) {
	lat, lng := 25.03, 121.56
	assert.True(t, DeliverySnapshot{Latitude: &lat, Longitude: &lng}.HasLocation())
	assert.False(t, DeliverySnapshot{Latitude: &lat}.HasLocation())
}
