package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
)

// DirectPurchase is a "buy now" selection that bypasses the cart.
type DirectPurchase struct {
	ProductID uuid.UUID
	Quantity  int
	Size      string
	Color     string
}

// PlaceOrderInput defines a checkout request.
// Without Direct the whole cart is checked out, or only LineIDs when given.
type PlaceOrderInput struct {
	AddressID     uuid.UUID
	PaymentMethod entity.PaymentMethod
	Notes         string
	LineIDs       []uuid.UUID
	Direct        *DirectPurchase
}

// PlaceOrderOutput holds one order per shop in the checkout.
type PlaceOrderOutput struct {
	Orders []*entity.Order
}

// RevenueTransaction is a delivered order in the revenue report.
type RevenueTransaction struct {
	OrderID      uuid.UUID
	OrderNumber  string
	Amount       entity.Money
	CustomerName string
	CreatedAt    time.Time
}

// RevenueReport summarises delivered revenue of a shop.
type RevenueReport struct {
	Today              entity.Money
	ThisMonth          entity.Money
	Total              entity.Money
	DeliveredOrders    int
	TotalOrders        int
	RecentTransactions []RevenueTransaction
}

// OrderUsecase defines checkout and the order status pipeline.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*PlaceOrderOutput, error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	ListCustomerOrders(ctx context.Context, userID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error)

	UpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error)
	ListShopOrders(ctx context.Context, ownerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error)
	ShopRevenue(ctx context.Context, ownerID uuid.UUID) (*RevenueReport, error)

	GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)
	OrderQRCode(ctx context.Context, actor entity.Actor, orderID uuid.UUID) ([]byte, error)
	OrderMap(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*service.OrderMap, error)
}
