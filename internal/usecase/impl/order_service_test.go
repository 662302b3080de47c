package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *txRepos
	qrCodes   *mockSvc.MockQRCodeService
	maps      *mockSvc.MockMapService
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	qrCodes := mockSvc.NewMockQRCodeService(t)
	maps := mockSvc.NewMockMapService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		QRCodes:   qrCodes,
		Maps:      maps,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	svc.(*orderService).now = func() time.Time { return fixedNow }

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		repos:     newTxRepos(t),
		qrCodes:   qrCodes,
		maps:      maps,
		publisher: publisher,
	}
}

type checkoutFixture struct {
	user    *entity.User
	address *entity.Address
}

func newCheckoutFixture() checkoutFixture {
	userID := uuid.New()
	lat, lng := 25.033, 121.5654

	return checkoutFixture{
		user: &entity.User{ID: userID, Email: "alice@example.com", Name: "Alice"},
		address: &entity.Address{
			ID:           uuid.New(),
			UserID:       userID,
			FullName:     "Alice Chen",
			Phone:        "0912345678",
			AddressLine1: "1 Market St",
			City:         "Taipei",
			PostalCode:   "100",
			Latitude:     &lat,
			Longitude:    &lng,
			IsDefault:    true,
		},
	}
}

func (c checkoutFixture) expectLoaded(fx orderServiceFixtures, ctx context.Context) {
	fx.repos.users.EXPECT().FindByID(ctx, c.user.ID).Return(c.user, nil)
	fx.repos.addresses.EXPECT().FindByID(ctx, c.user.ID, c.address.ID).Return(c.address, nil)
}

func TestOrderService_PlaceOrder_SplitsCartByShop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	co := newCheckoutFixture()
	shirtA, capA, mugB := shirt(10, 5), shirt(15, 5), shirt(60, 5)
	capA.Shop, capA.Sizes = shirtA.Shop, nil
	for _, p := range []*entity.Product{shirtA, capA, mugB} {
		p.ShopID = p.Shop.ID
	}
	lines := []*entity.CartLine{
		{ID: uuid.New(), ProductID: shirtA.ID, Size: "M", Quantity: 2, Product: shirtA},
		{ID: uuid.New(), ProductID: mugB.ID, Size: "S", Quantity: 1, Product: mugB},
		{ID: uuid.New(), ProductID: capA.ID, Quantity: 1, Product: capA},
	}

	fx.repos.expectTx(t, fx.txManager)
	co.expectLoaded(fx, ctx)
	fx.repos.carts.EXPECT().ListByUser(ctx, co.user.ID).Return(lines, nil)
	fx.repos.products.EXPECT().DecrementStock(ctx, shirtA.ID, 2).Return(nil)
	fx.repos.products.EXPECT().DecrementStock(ctx, mugB.ID, 1).Return(nil)
	fx.repos.products.EXPECT().DecrementStock(ctx, capA.ID, 1).Return(nil)
	fx.repos.orders.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) { order.ID = uuid.New() }).
		Return(nil).
		Times(2)
	fx.repos.carts.EXPECT().
		DeleteByIDs(ctx, co.user.ID, []uuid.UUID{lines[0].ID, lines[1].ID, lines[2].ID}).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool { return event.Type == service.EventOrderPlaced })).
		Return(nil).
		Times(2)

	out, err := fx.service.PlaceOrder(ctx, co.user.ID, &usecase.PlaceOrderInput{
		AddressID:     co.address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		Notes:         "  leave at door ",
	})

	require.NoError(t, err)
	require.Len(t, out.Orders, 2)

	first, second := out.Orders[0], out.Orders[1]
	assert.Equal(t, shirtA.ShopID, first.ShopID)
	assert.Len(t, first.Items, 2)
	assert.True(t, entity.NewMoney(35).Equal(first.Subtotal))
	assert.True(t, entity.NewMoney(5).Equal(first.ShippingFee))
	assert.True(t, entity.NewMoney(40).Equal(first.Total))

	assert.Equal(t, mugB.ShopID, second.ShopID)
	assert.True(t, second.ShippingFee.IsZero())
	assert.True(t, entity.NewMoney(60).Equal(second.Total))

	for _, order := range out.Orders {
		assert.Regexp(t, `^BZR-\d{8}-[A-Z2-9]{6}$`, order.OrderNumber)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
		assert.Equal(t, "leave at door", order.Notes)
		assert.Equal(t, "1 Market St, Taipei, 100", order.Delivery.Address)
		assert.Equal(t, "Alice Chen", order.Delivery.RecipientName)
		assert.True(t, order.Delivery.HasLocation())
		assert.Equal(t, "Alice", order.Customer.Name)
		assert.Equal(t, "0912345678", order.Customer.Phone, "account without phone falls back to the address")
		assert.Equal(t, "Corner Store", order.ShopName)
	}
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
}

func TestOrderService_PlaceOrder_DirectPurchaseKeepsCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	co := newCheckoutFixture()
	product := shirt(80, 3)
	product.ShopID = product.Shop.ID

	fx.repos.expectTx(t, fx.txManager)
	co.expectLoaded(fx, ctx)
	fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.products.EXPECT().DecrementStock(ctx, product.ID, 3).Return(nil)
	fx.repos.orders.EXPECT().
		Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return len(order.Items) == 1 && order.Items[0].Quantity == 3 && order.Items[0].Size == "S"
		})).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	out, err := fx.service.PlaceOrder(ctx, co.user.ID, &usecase.PlaceOrderInput{
		AddressID:     co.address.ID,
		PaymentMethod: entity.PaymentMethodCard,
		Direct:        &usecase.DirectPurchase{ProductID: product.ID, Quantity: 3, Size: "S"},
	})

	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	assert.True(t, entity.NewMoney(240).Equal(out.Orders[0].Total))
}

func TestOrderService_PlaceOrder_ItemsSurviveProductEdits(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	co := newCheckoutFixture()
	product := shirt(100, 5)
	product.ShopID = product.Shop.ID

	fx.repos.expectTx(t, fx.txManager)
	co.expectLoaded(fx, ctx)
	fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.products.EXPECT().DecrementStock(ctx, product.ID, 2).Return(nil)
	fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	out, err := fx.service.PlaceOrder(ctx, co.user.ID, &usecase.PlaceOrderInput{
		AddressID:     co.address.ID,
		PaymentMethod: entity.PaymentMethodCard,
		Direct:        &usecase.DirectPurchase{ProductID: product.ID, Quantity: 2, Size: "M"},
	})
	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	require.Len(t, out.Orders[0].Items, 1)

	product.Price = entity.NewMoney(80)
	product.Name = "Linen Shirt (2026 cut)"

	item := out.Orders[0].Items[0]
	assert.True(t, entity.NewMoney(100).Equal(item.UnitPrice))
	assert.Equal(t, "Linen Shirt", item.ProductName)
	assert.True(t, entity.NewMoney(200).Equal(out.Orders[0].Total))
}

func TestOrderService_PlaceOrder_SelectedLines(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	co := newCheckoutFixture()
	picked, skipped := shirt(30, 5), shirt(10, 5)
	picked.ShopID = picked.Shop.ID
	lines := []*entity.CartLine{
		{ID: uuid.New(), ProductID: skipped.ID, Size: "M", Quantity: 1, Product: skipped},
		{ID: uuid.New(), ProductID: picked.ID, Size: "M", Quantity: 2, Product: picked},
	}

	fx.repos.expectTx(t, fx.txManager)
	co.expectLoaded(fx, ctx)
	fx.repos.carts.EXPECT().ListByUser(ctx, co.user.ID).Return(lines, nil)
	fx.repos.products.EXPECT().DecrementStock(ctx, picked.ID, 2).Return(nil)
	fx.repos.orders.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.repos.carts.EXPECT().DeleteByIDs(ctx, co.user.ID, []uuid.UUID{lines[1].ID}).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	out, err := fx.service.PlaceOrder(ctx, co.user.ID, &usecase.PlaceOrderInput{
		AddressID:     co.address.ID,
		PaymentMethod: entity.PaymentMethodUPI,
		LineIDs:       []uuid.UUID{lines[1].ID},
	})

	require.NoError(t, err)
	assert.Len(t, out.Orders, 1)
}

func TestOrderService_PlaceOrder_Rejected(t *testing.T) {
	co := newCheckoutFixture()
	hidden := shirt(10, 5)
	hidden.IsActive = false
	lowStock := shirt(10, 1)

	tests := []struct {
		name    string
		input   *usecase.PlaceOrderInput
		lines   []*entity.CartLine
		wantErr error
	}{
		{
			name:    "empty cart",
			input:   &usecase.PlaceOrderInput{AddressID: co.address.ID, PaymentMethod: entity.PaymentMethodCOD},
			lines:   []*entity.CartLine{},
			wantErr: domainerrors.ErrCartEmpty,
		},
		{
			name:    "unavailable product",
			input:   &usecase.PlaceOrderInput{AddressID: co.address.ID, PaymentMethod: entity.PaymentMethodCOD},
			lines:   []*entity.CartLine{{ID: uuid.New(), Size: "M", Quantity: 1, Product: hidden}},
			wantErr: domainerrors.ErrCartLineInvalid,
		},
		{
			name:    "deleted product",
			input:   &usecase.PlaceOrderInput{AddressID: co.address.ID, PaymentMethod: entity.PaymentMethodCOD},
			lines:   []*entity.CartLine{{ID: uuid.New(), Quantity: 1}},
			wantErr: domainerrors.ErrCartLineInvalid,
		},
		{
			name:    "not enough stock",
			input:   &usecase.PlaceOrderInput{AddressID: co.address.ID, PaymentMethod: entity.PaymentMethodCOD},
			lines:   []*entity.CartLine{{ID: uuid.New(), Size: "M", Quantity: 2, Product: lowStock}},
			wantErr: domainerrors.ErrInsufficientStock,
		},
		{
			name:    "selected line not in cart",
			input:   &usecase.PlaceOrderInput{AddressID: co.address.ID, PaymentMethod: entity.PaymentMethodCOD, LineIDs: []uuid.UUID{uuid.New()}},
			lines:   []*entity.CartLine{{ID: uuid.New(), Size: "M", Quantity: 1, Product: lowStock}},
			wantErr: domainerrors.ErrCartLineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.repos.expectTx(t, fx.txManager)
			co.expectLoaded(fx, ctx)
			fx.repos.carts.EXPECT().ListByUser(ctx, co.user.ID).Return(tt.lines, nil)

			out, err := fx.service.PlaceOrder(ctx, co.user.ID, tt.input)

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOrderService_PlaceOrder_InvalidInput(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()

	_, err := fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{PaymentMethod: "cheque"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentMethod))

	_, err = fx.service.PlaceOrder(ctx, uuid.New(), &usecase.PlaceOrderInput{
		PaymentMethod: entity.PaymentMethodCOD,
		Direct:        &usecase.DirectPurchase{ProductID: uuid.New(), Quantity: 0},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
}

func TestOrderService_PlaceOrder_StockTakenConcurrently(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	co := newCheckoutFixture()
	product := shirt(10, 5)
	lines := []*entity.CartLine{{ID: uuid.New(), ProductID: product.ID, Size: "M", Quantity: 4, Product: product}}

	fx.repos.expectTx(t, fx.txManager)
	co.expectLoaded(fx, ctx)
	fx.repos.carts.EXPECT().ListByUser(ctx, co.user.ID).Return(lines, nil)
	fx.repos.products.EXPECT().DecrementStock(ctx, product.ID, 4).Return(repository.ErrInsufficientStock)

	out, err := fx.service.PlaceOrder(ctx, co.user.ID, &usecase.PlaceOrderInput{AddressID: co.address.ID, PaymentMethod: entity.PaymentMethodCOD})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_PlaceOrder_UnknownAddress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	co := newCheckoutFixture()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.users.EXPECT().FindByID(ctx, co.user.ID).Return(co.user, nil)
	fx.repos.addresses.EXPECT().FindByID(ctx, co.user.ID, co.address.ID).Return(nil, repository.ErrAddressNotFound)

	_, err := fx.service.PlaceOrder(ctx, co.user.ID, &usecase.PlaceOrderInput{AddressID: co.address.ID, PaymentMethod: entity.PaymentMethodCOD})

	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func pendingOrder(userID, shopID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		ShopID:      shopID,
		OrderNumber: "BZR-20250315-ABCDEF",
		Status:      entity.OrderStatusPending,
		Total:       entity.NewMoney(40),
		Customer:    entity.CustomerSnapshot{Name: "Alice"},
		Items: []*entity.OrderItem{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: entity.NewMoney(10)},
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: entity.NewMoney(20)},
		},
	}
}

func TestOrderService_CancelOrder_RestocksItems(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(userID, uuid.New())

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.repos.orders.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled).Return(nil)
	fx.repos.products.EXPECT().IncrementStock(ctx, order.Items[0].ProductID, 2).Return(nil)
	fx.repos.products.EXPECT().IncrementStock(ctx, order.Items[1].ProductID, 1).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventOrderStatusChanged &&
				event.Payload["from"] == "pending" && event.Payload["to"] == "cancelled"
		})).
		Return(nil)

	cancelled, err := fx.service.CancelOrder(ctx, userID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_Rejected(t *testing.T) {
	userID := uuid.New()
	packed := pendingOrder(userID, uuid.New())
	packed.Status = entity.OrderStatusPacked

	tests := []struct {
		name    string
		order   *entity.Order
		caller  uuid.UUID
		wantErr error
	}{
		{"already packed", packed, userID, domainerrors.ErrInvalidStatusTransition},
		{"someone else's order", pendingOrder(uuid.New(), uuid.New()), userID, domainerrors.ErrOrderNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.repos.expectTx(t, fx.txManager)
			fx.repos.orders.EXPECT().FindByID(ctx, tt.order.ID).Return(tt.order, nil)

			_, err := fx.service.CancelOrder(ctx, tt.caller, tt.order.ID)

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestOrderService_UpdateStatus_OwnerAdvances(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
	shop := liveShop(owner.UserID)
	order := pendingOrder(uuid.New(), shop.ID)

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.repos.orders.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusPacked).Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, owner, order.ID, entity.OrderStatusPacked)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPacked, updated.Status)
}

func TestOrderService_UpdateStatus_Rejected(t *testing.T) {
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
	shop := liveShop(owner.UserID)

	t.Run("skipping a step", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := pendingOrder(uuid.New(), shop.ID)

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

		_, err := fx.service.UpdateStatus(ctx, owner, order.ID, entity.OrderStatusShipped)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})

	t.Run("terminal order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := pendingOrder(uuid.New(), shop.ID)
		order.Status = entity.OrderStatusDelivered

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := fx.service.UpdateStatus(ctx, adminActor, order.ID, entity.OrderStatusCancelled)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})

	t.Run("owner of another shop", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := pendingOrder(uuid.New(), shop.ID)
		stranger := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

		_, err := fx.service.UpdateStatus(ctx, stranger, order.ID, entity.OrderStatusPacked)

		assert.True(t, errors.Is(err, domainerrors.ErrShopOwnershipViolation))
	})

	t.Run("concurrent change", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := pendingOrder(uuid.New(), shop.ID)

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.repos.orders.EXPECT().
			UpdateStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusPacked).
			Return(repository.ErrOrderStatusConflict)

		_, err := fx.service.UpdateStatus(ctx, adminActor, order.ID, entity.OrderStatusPacked)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})

	t.Run("unknown status", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.UpdateStatus(context.Background(), adminActor, uuid.New(), "returned")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestOrderService_UpdateStatus_AdminCancelRestocks(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New(), uuid.New())
	order.Status = entity.OrderStatusShipped

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.repos.orders.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusShipped, entity.OrderStatusCancelled).Return(nil)
	fx.repos.products.EXPECT().IncrementStock(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("int")).Return(nil).Times(2)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, adminActor, order.ID, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_ListCustomerOrders(t *testing.T) {
	tests := []struct {
		filter entity.OrderFilter
		want   []entity.OrderStatus
	}{
		{"", nil},
		{entity.OrderFilterAll, nil},
		{entity.OrderFilterOngoing, []entity.OrderStatus{entity.OrderStatusPending, entity.OrderStatusPacked, entity.OrderStatusShipped}},
		{entity.OrderFilterDelivered, []entity.OrderStatus{entity.OrderStatusDelivered}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			userID := uuid.New()

			fx.repos.expectTx(t, fx.txManager)
			fx.repos.orders.EXPECT().ListByUser(ctx, userID, tt.want).Return([]*entity.Order{}, nil)

			_, err := fx.service.ListCustomerOrders(ctx, userID, tt.filter)

			require.NoError(t, err)
		})
	}
}

func TestOrderService_ListShopOrders_InvalidFilter(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListShopOrders(context.Background(), uuid.New(), "lost")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBuildRevenueReport(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	delivered := func(amount float64, at time.Time) *entity.Order {
		return &entity.Order{ID: uuid.New(), Status: entity.OrderStatusDelivered, Total: entity.NewMoney(amount), CreatedAt: at}
	}
	orders := []*entity.Order{
		delivered(10, now.Add(-2*time.Hour)),
		{ID: uuid.New(), Status: entity.OrderStatusPending, Total: entity.NewMoney(100), CreatedAt: now},
		delivered(20, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)),
		delivered(30, time.Date(2025, 2, 27, 9, 0, 0, 0, time.UTC)),
		{ID: uuid.New(), Status: entity.OrderStatusCancelled, Total: entity.NewMoney(70), CreatedAt: now},
	}

	report := buildRevenueReport(orders, now)

	assert.True(t, entity.NewMoney(10).Equal(report.Today))
	assert.True(t, entity.NewMoney(30).Equal(report.ThisMonth))
	assert.True(t, entity.NewMoney(60).Equal(report.Total))
	assert.Equal(t, 3, report.DeliveredOrders)
	assert.Equal(t, 5, report.TotalOrders)
	assert.Len(t, report.RecentTransactions, 3)
	assert.Equal(t, orders[0].ID, report.RecentTransactions[0].OrderID)
}

func TestOrderService_ShopRevenue(t *testing.T) {
	t.Run("reports delivered orders of the owner's shop", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		ownerID := uuid.New()
		shop := liveShop(ownerID)
		orders := make([]*entity.Order, 0, 7)
		for i := range 7 {
			orders = append(orders, &entity.Order{
				ID:          uuid.New(),
				ShopID:      shop.ID,
				Status:      entity.OrderStatusDelivered,
				Total:       entity.NewMoney(10),
				Customer:    entity.CustomerSnapshot{Name: "Alice"},
				CreatedAt:   fixedNow.Add(-time.Duration(i) * time.Hour),
				OrderNumber: "BZR-" + string(rune('A'+i)),
			})
		}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByOwnerID(ctx, ownerID).Return(shop, nil)
		fx.repos.orders.EXPECT().ListByShop(ctx, shop.ID, []entity.OrderStatus(nil)).Return(orders, nil)

		report, err := fx.service.ShopRevenue(ctx, ownerID)

		require.NoError(t, err)
		assert.True(t, entity.NewMoney(70).Equal(report.Total))
		assert.True(t, entity.NewMoney(70).Equal(report.ThisMonth))
		assert.True(t, entity.NewMoney(70).Equal(report.Today))
		assert.Equal(t, 7, report.DeliveredOrders)
		assert.Len(t, report.RecentTransactions, 5)
		assert.Equal(t, "BZR-A", report.RecentTransactions[0].OrderNumber)
		assert.Equal(t, "Alice", report.RecentTransactions[0].CustomerName)
	})

	t.Run("owner without shop", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrShopNotFound)

		_, err := fx.service.ShopRevenue(ctx, ownerID)

		assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
	})
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	customerID := uuid.New()
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
	shop := liveShop(owner.UserID)

	tests := []struct {
		name    string
		actor   entity.Actor
		visible bool
	}{
		{"purchaser", entity.Actor{UserID: customerID, Role: entity.RoleCustomer}, true},
		{"shop owner", owner, true},
		{"admin", adminActor, true},
		{"stranger", entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			order := pendingOrder(customerID, shop.ID)

			fx.repos.expectTx(t, fx.txManager)
			fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

			got, err := fx.service.GetOrder(ctx, tt.actor, order.ID)

			if tt.visible {
				require.NoError(t, err)
				assert.Equal(t, order, got)

				return
			}
			assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
		})
	}
}

func TestOrderService_OrderQRCode(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	customer := entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	order := pendingOrder(customer.UserID, uuid.New())

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.repos.shops.EXPECT().FindByID(ctx, order.ShopID).Return(nil, repository.ErrShopNotFound)
	fx.qrCodes.EXPECT().
		GenerateOrderQR(service.OrderQRPayload{OrderNumber: order.OrderNumber, Total: "40.00", CustomerName: "Alice"}).
		Return([]byte("png"), nil)

	png, err := fx.service.OrderQRCode(ctx, customer, order.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_OrderMap(t *testing.T) {
	customer := entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}

	t.Run("map available", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := pendingOrder(customer.UserID, uuid.New())
		shop := &entity.Shop{ID: order.ShopID}
		orderMap := &service.OrderMap{GeoJSON: []byte(`{"type":"FeatureCollection","features":[]}`), DistanceKm: lo.ToPtr(2.5)}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.repos.shops.EXPECT().FindByID(ctx, order.ShopID).Return(shop, nil)
		fx.maps.EXPECT().BuildOrderMap(order, shop).Return(orderMap, nil)

		got, err := fx.service.OrderMap(ctx, customer, order.ID)

		require.NoError(t, err)
		assert.Equal(t, orderMap, got)
	})

	t.Run("no delivery location", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := pendingOrder(customer.UserID, uuid.New())
		shop := &entity.Shop{ID: order.ShopID}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		fx.repos.shops.EXPECT().FindByID(ctx, order.ShopID).Return(shop, nil)
		fx.maps.EXPECT().BuildOrderMap(order, shop).Return(nil, nil)

		_, err := fx.service.OrderMap(ctx, customer, order.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}
