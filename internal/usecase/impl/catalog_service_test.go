package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *txRepos
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return catalogServiceFixtures{
		service: NewCatalogService(CatalogServiceParams{
			TxManager: txManager,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		repos:     newTxRepos(t),
	}
}

func liveShop(ownerID uuid.UUID) *entity.Shop {
	return &entity.Shop{ID: uuid.New(), OwnerID: ownerID, Name: "Corner Store", Approved: true, IsActive: true}
}

func validProductInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:          "Linen Shirt",
		Price:         entity.NewMoney(29.90),
		Images:        []string{" https://cdn.example.com/a.jpg ", "", "https://cdn.example.com/a.jpg"},
		Sizes:         []string{"S", " M ", "S"},
		StockQuantity: 10,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
	shop := liveShop(owner.UserID)

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.shops.EXPECT().FindByOwnerID(ctx, owner.UserID).Return(shop, nil)
	fx.repos.products.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.ShopID == shop.ID && p.IsActive
		})).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, owner, validProductInput())

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, product.Images)
	assert.Equal(t, "https://cdn.example.com/a.jpg", product.ImageURL)
	assert.Equal(t, []string{"S", "M"}, product.Sizes)
	assert.Equal(t, shop, product.Shop)
}

func TestCatalogService_CreateProduct_InactiveOnRequest(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
	input := validProductInput()
	input.IsActive = lo.ToPtr(false)

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.shops.EXPECT().FindByOwnerID(ctx, owner.UserID).Return(liveShop(owner.UserID), nil)
	fx.repos.products.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool { return !p.IsActive })).
		Return(nil)

	_, err := fx.service.CreateProduct(ctx, owner, input)

	require.NoError(t, err)
}

func TestCatalogService_CreateProduct_ShopNotApproved(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.shops.EXPECT().FindByOwnerID(ctx, owner.UserID).Return(&entity.Shop{ID: uuid.New(), OwnerID: owner.UserID}, nil)

	_, err := fx.service.CreateProduct(ctx, owner, validProductInput())

	assert.True(t, errors.Is(err, domainerrors.ErrShopNotApproved))
}

func TestCatalogService_CreateProduct_ExplicitShop(t *testing.T) {
	otherShop := liveShop(uuid.New())

	tests := []struct {
		name    string
		actor   entity.Actor
		wantErr error
	}{
		{"owner of another shop", entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}, domainerrors.ErrShopOwnershipViolation},
		{"admin", entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()
			input := validProductInput()
			input.ShopID = &otherShop.ID

			fx.repos.expectTx(t, fx.txManager)
			fx.repos.shops.EXPECT().FindByID(ctx, otherShop.ID).Return(otherShop, nil)
			if tt.wantErr == nil {
				fx.repos.products.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
			}

			product, err := fx.service.CreateProduct(ctx, tt.actor, input)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, otherShop.ID, product.ShopID)
		})
	}
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.ProductInput)
	}{
		{"missing name", func(in *usecase.ProductInput) { in.Name = " " }},
		{"zero price", func(in *usecase.ProductInput) { in.Price = entity.ZeroMoney }},
		{"negative compare price", func(in *usecase.ProductInput) { in.CompareAtPrice = lo.ToPtr(entity.NewMoney(-1)) }},
		{"negative stock", func(in *usecase.ProductInput) { in.StockQuantity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			input := validProductInput()
			tt.mutate(input)

			_, err := fx.service.CreateProduct(context.Background(), entity.Actor{UserID: uuid.New()}, input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	t.Run("keeps active flag when not given", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
		shop := liveShop(owner.UserID)
		existing := &entity.Product{ID: uuid.New(), ShopID: shop.ID, IsActive: false, Shop: shop}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.products.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		fx.repos.products.EXPECT().
			Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
				return !p.IsActive && p.Name == "Linen Shirt"
			})).
			Return(nil)

		_, err := fx.service.UpdateProduct(ctx, owner, existing.ID, validProductInput())

		require.NoError(t, err)
	})

	t.Run("other owner is rejected", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		shop := liveShop(uuid.New())
		existing := &entity.Product{ID: uuid.New(), ShopID: shop.ID, Shop: shop}

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.products.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

		_, err := fx.service.UpdateProduct(ctx, entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}, existing.ID, validProductInput())

		assert.True(t, errors.Is(err, domainerrors.ErrShopOwnershipViolation))
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
	shop := liveShop(owner.UserID)
	product := &entity.Product{ID: uuid.New(), ShopID: shop.ID, Shop: shop}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.products.EXPECT().Delete(ctx, product.ID).Return(nil)

	assert.NoError(t, fx.service.DeleteProduct(ctx, owner, product.ID))
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.products.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, adminActor, productID)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_ListPublicProducts_ClampsPaging(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.products.EXPECT().
		ListPublic(ctx, repository.ProductFilter{Category: "shirts", Search: "linen", Limit: 100, Offset: 0}).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ListPublicProducts(ctx, &usecase.ProductQuery{Category: "shirts", Search: "linen", Limit: 1000, Offset: -5})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_GetPublicProduct_Hidden(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
	}{
		{"inactive product", &entity.Product{ID: uuid.New(), IsActive: false, Shop: liveShop(uuid.New())}},
		{"deactivated shop", &entity.Product{ID: uuid.New(), IsActive: true, Shop: &entity.Shop{Approved: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			ctx := context.Background()

			fx.repos.expectTx(t, fx.txManager)
			fx.repos.products.EXPECT().FindByID(ctx, tt.product.ID).Return(tt.product, nil)

			got, err := fx.service.GetPublicProduct(ctx, tt.product.ID)

			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
		})
	}
}
