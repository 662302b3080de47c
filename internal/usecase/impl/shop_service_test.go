package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixtures struct {
	service   usecase.ShopUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *txRepos
	publisher *mockSvc.MockEventPublisher
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return shopServiceFixtures{
		service: NewShopService(ShopServiceParams{
			TxManager: txManager,
			Publisher: publisher,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		repos:     newTxRepos(t),
		publisher: publisher,
	}
}

func (fx shopServiceFixtures) expectEvent(eventType string) {
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == eventType && !event.OccurredAt.IsZero()
		})).
		Return(nil).
		Once()
}

var adminActor = entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

func TestShopService_CreateShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shopID := uuid.New()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.shops.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrShopNotFound)
	fx.repos.shops.EXPECT().
		Create(ctx, mock.MatchedBy(func(shop *entity.Shop) bool {
			return shop.OwnerID == ownerID && shop.Name == "Corner Store" && !shop.Approved && !shop.IsActive
		})).
		Run(func(ctx context.Context, shop *entity.Shop) { shop.ID = shopID }).
		Return(nil)
	fx.expectEvent(service.EventShopCreated)

	shop, err := fx.service.CreateShop(ctx, ownerID, &usecase.CreateShopInput{Name: " Corner Store "})

	require.NoError(t, err)
	assert.Equal(t, shopID, shop.ID)
	assert.Equal(t, entity.ShopStateCreated, shop.State())
}

func TestShopService_CreateShop_Rejected(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		fx := createTestShopService(t)

		_, err := fx.service.CreateShop(context.Background(), uuid.New(), &usecase.CreateShopInput{Name: "   "})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("owner already has a shop", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByOwnerID(ctx, ownerID).Return(&entity.Shop{ID: uuid.New(), OwnerID: ownerID}, nil)

		_, err := fx.service.CreateShop(ctx, ownerID, &usecase.CreateShopInput{Name: "Second"})

		assert.True(t, errors.Is(err, domainerrors.ErrShopAlreadyExists))
	})

	t.Run("unique owner constraint", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrShopNotFound)
		fx.repos.shops.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(repository.ErrShopOwnerConflict)

		_, err := fx.service.CreateShop(ctx, ownerID, &usecase.CreateShopInput{Name: "Racing"})

		assert.True(t, errors.Is(err, domainerrors.ErrShopAlreadyExists))
	})
}

func TestShopService_GetOwnerDashboard_NoShop(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.shops.EXPECT().FindByOwnerID(ctx, ownerID).Return(nil, repository.ErrShopNotFound)

	dashboard, err := fx.service.GetOwnerDashboard(ctx, ownerID)

	require.NoError(t, err)
	assert.True(t, dashboard.Shop.IsAbsent())
	assert.Empty(t, dashboard.RecentOrders)
	assert.True(t, dashboard.Stats.DeliveredRevenue.IsZero())
}

func TestShopService_GetOwnerDashboard_LimitsRecentOrders(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: ownerID, Approved: true, IsActive: true}
	stats := &entity.ShopStats{ProductCount: 4, OrderCount: 7, DeliveredRevenue: entity.NewMoney(120)}
	orders := make([]*entity.Order, 7)
	for i := range orders {
		orders[i] = &entity.Order{ID: uuid.New(), ShopID: shop.ID}
	}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.shops.EXPECT().FindByOwnerID(ctx, ownerID).Return(shop, nil)
	fx.repos.shops.EXPECT().Stats(ctx, shop.ID).Return(stats, nil)
	fx.repos.orders.EXPECT().ListByShop(ctx, shop.ID, []entity.OrderStatus(nil)).Return(orders, nil)

	dashboard, err := fx.service.GetOwnerDashboard(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, shop, dashboard.Shop.MustGet())
	assert.Equal(t, stats, dashboard.Stats)
	assert.Len(t, dashboard.RecentOrders, 5)
	assert.Equal(t, orders[0].ID, dashboard.RecentOrders[0].ID)
}

func TestShopService_ApproveShop(t *testing.T) {
	t.Run("pending shop is approved and activated", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
		fx.repos.shops.EXPECT().UpdateFlags(ctx, shop.ID, true, true).Return(nil)
		fx.expectEvent(service.EventShopApproved)

		approved, err := fx.service.ApproveShop(ctx, adminActor, shop.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.ShopStateApproved, approved.State())
	})

	t.Run("already live shop is left alone", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		shop := &entity.Shop{ID: uuid.New(), Approved: true, IsActive: true}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

		_, err := fx.service.ApproveShop(ctx, adminActor, shop.ID)

		require.NoError(t, err)
	})

	t.Run("owners cannot approve", func(t *testing.T) {
		fx := createTestShopService(t)

		_, err := fx.service.ApproveShop(context.Background(), entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestShopService_RejectShop(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		fx := createTestShopService(t)

		err := fx.service.RejectShop(context.Background(), adminActor, uuid.New(), false)

		assert.True(t, errors.Is(err, domainerrors.ErrRejectionNotConfirmed))
	})

	t.Run("only pending shops", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		shop := &entity.Shop{ID: uuid.New(), Approved: true}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

		err := fx.service.RejectShop(ctx, adminActor, shop.ID, true)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidShopState))
	})

	t.Run("deletes shop and products", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
		fx.repos.products.EXPECT().DeleteByShopID(ctx, shop.ID).Return(int64(3), nil)
		fx.repos.shops.EXPECT().Delete(ctx, shop.ID).Return(nil)
		fx.expectEvent(service.EventShopRejected)

		assert.NoError(t, fx.service.RejectShop(ctx, adminActor, shop.ID, true))
	})
}

func TestShopService_DeactivateShop(t *testing.T) {
	t.Run("pending shop cannot be deactivated", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		shop := &entity.Shop{ID: uuid.New()}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

		_, err := fx.service.DeactivateShop(ctx, adminActor, shop.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidShopState))
	})

	t.Run("live shop keeps approval", func(t *testing.T) {
		fx := createTestShopService(t)
		ctx := context.Background()
		shop := &entity.Shop{ID: uuid.New(), Approved: true, IsActive: true}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
		fx.repos.shops.EXPECT().UpdateFlags(ctx, shop.ID, true, false).Return(nil)
		fx.expectEvent(service.EventShopDeactivated)

		deactivated, err := fx.service.DeactivateShop(ctx, adminActor, shop.ID)

		require.NoError(t, err)
		assert.Equal(t, entity.ShopStateDeactivated, deactivated.State())
	})
}

func TestShopService_ListAllShops_AdminOnly(t *testing.T) {
	fx := createTestShopService(t)

	_, err := fx.service.ListAllShops(context.Background(), entity.Actor{UserID: uuid.New(), Role: entity.RoleCustomer})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestShopService_GetPublicShop_HiddenShop(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shop := &entity.Shop{ID: uuid.New(), Approved: true, IsActive: false}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.shops.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	got, err := fx.service.GetPublicShop(ctx, shop.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}
