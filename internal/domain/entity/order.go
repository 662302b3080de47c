package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderStatusNext is the happy path; each status may only advance one step.
var orderStatusNext = map[OrderStatus]OrderStatus{
	OrderStatusPending: OrderStatusPacked,
	OrderStatusPacked:  OrderStatusShipped,
	OrderStatusShipped: OrderStatusDelivered,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPacked, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// IsOngoing reports whether the order is still moving through fulfilment.
func (s OrderStatus) IsOngoing() bool {
	return s == OrderStatusPending || s == OrderStatusPacked || s == OrderStatusShipped
}

// CanTransitionTo reports whether next is a legal move from s.
// Orders advance one step at a time along pending, packed, shipped, delivered,
// and may be cancelled from any state before delivery.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return orderStatusNext[s] == next
}

// OrderFilter selects a subset of orders for list views.
type OrderFilter string

const (
	OrderFilterAll       OrderFilter = "all"
	OrderFilterOngoing   OrderFilter = "ongoing"
	OrderFilterDelivered OrderFilter = "delivered"
	OrderFilterCancelled OrderFilter = "cancelled"
)

// IsValid checks if the OrderFilter is a valid value.
func (f OrderFilter) IsValid() bool {
	switch f {
	case OrderFilterAll, OrderFilterOngoing, OrderFilterDelivered, OrderFilterCancelled:
		return true
	default:
		return false
	}
}

// Statuses returns the statuses matched by the filter; nil means every status.
func (f OrderFilter) Statuses() []OrderStatus {
	switch f {
	case OrderFilterOngoing:
		return []OrderStatus{OrderStatusPending, OrderStatusPacked, OrderStatusShipped}
	case OrderFilterDelivered:
		return []OrderStatus{OrderStatusDelivered}
	case OrderFilterCancelled:
		return []OrderStatus{OrderStatusCancelled}
	default:
		return nil
	}
}

// PaymentMethod is how the customer chose to pay. No payment is processed.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "cod"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodUPI    PaymentMethod = "upi"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI, PaymentMethodWallet:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks the recorded payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// DeliverySnapshot is the denormalized delivery address captured at checkout.
// Later edits to the address book never touch it.
type DeliverySnapshot struct {
	RecipientName string
	Phone         string
	Address       string
	Latitude      *float64
	Longitude     *float64
}

// HasLocation reports whether both coordinates were captured.
func (d DeliverySnapshot) HasLocation() bool {
	return d.Latitude != nil && d.Longitude != nil
}

// CustomerSnapshot is the purchaser's contact data captured at checkout.
type CustomerSnapshot struct {
	Name  string
	Phone string
	Email string
}

// Order is an immutable snapshot of a purchase from one shop plus a mutable status.
type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ShopID        uuid.UUID
	OrderNumber   string
	Status        OrderStatus
	Subtotal      Money
	ShippingFee   Money
	Total         Money
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Delivery      DeliverySnapshot
	Customer      CustomerSnapshot
	Notes         string
	Items         []*OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time

	ShopName string // Populated on joined reads.
}

// OrderItem is a frozen copy of a product line at the time of purchase.
type OrderItem struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	ProductID    uuid.UUID
	ProductName  string
	ProductImage string
	UnitPrice    Money
	Quantity     int
	Size         string
	Color        string
}

// LineTotal returns the unit price times quantity.
func (i *OrderItem) LineTotal() Money {
	return i.UnitPrice.Mul(MoneyFromInt(i.Quantity))
}

// CanBeViewedBy reports whether the actor may read the order given the owning shop.
func (o *Order) CanBeViewedBy(actor Actor, shop *Shop) bool {
	if actor.IsAdmin() || o.UserID == actor.UserID {
		return true
	}

	return shop != nil && shop.ID == o.ShopID && shop.IsOwnedBy(actor.UserID)
}
