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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service   usecase.CartUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *txRepos
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return cartServiceFixtures{
		service: NewCartService(CartServiceParams{
			TxManager: txManager,
			Config:    newTestConfig(),
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		repos:     newTxRepos(t),
	}
}

func shirt(price float64, stock int) *entity.Product {
	return &entity.Product{
		ID:            uuid.New(),
		Name:          "Linen Shirt",
		Price:         entity.NewMoney(price),
		Sizes:         []string{"S", "M"},
		StockQuantity: stock,
		IsActive:      true,
		Shop:          liveShop(uuid.New()),
	}
}

func TestCartService_AddToCart_MergesQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := shirt(20, 10)

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.carts.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(line *entity.CartLine) bool {
			return line.UserID == userID && line.Size == "M" && line.Quantity == 2
		})).
		Run(func(ctx context.Context, line *entity.CartLine) {
			line.ID = uuid.New()
			line.Quantity = 5
		}).
		Return(nil)

	line, err := fx.service.AddToCart(ctx, userID, &usecase.AddToCartInput{ProductID: product.ID, Quantity: 2, Size: "M"})

	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, product, line.Product)
}

func TestCartService_AddToCart_Rejected(t *testing.T) {
	product := shirt(20, 10)

	tests := []struct {
		name    string
		input   *usecase.AddToCartInput
		found   *entity.Product
		findErr error
		wantErr error
	}{
		{
			name:    "zero quantity",
			input:   &usecase.AddToCartInput{ProductID: product.ID, Quantity: 0, Size: "M"},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "size not offered",
			input:   &usecase.AddToCartInput{ProductID: product.ID, Quantity: 1, Size: "XXL"},
			found:   product,
			wantErr: domainerrors.ErrInvalidVariant,
		},
		{
			name:    "size required",
			input:   &usecase.AddToCartInput{ProductID: product.ID, Quantity: 1},
			found:   product,
			wantErr: domainerrors.ErrInvalidVariant,
		},
		{
			name:    "hidden product",
			input:   &usecase.AddToCartInput{ProductID: product.ID, Quantity: 1, Size: "M"},
			found:   &entity.Product{ID: product.ID, IsActive: false, Shop: product.Shop},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name:    "unknown product",
			input:   &usecase.AddToCartInput{ProductID: product.ID, Quantity: 1, Size: "M"},
			findErr: repository.ErrProductNotFound,
			wantErr: domainerrors.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			ctx := context.Background()

			if tt.found != nil || tt.findErr != nil {
				fx.repos.expectTx(t, fx.txManager)
				fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(tt.found, tt.findErr)
			}

			line, err := fx.service.AddToCart(ctx, uuid.New(), tt.input)

			assert.Nil(t, line)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	t.Run("below one is rejected", func(t *testing.T) {
		fx := createTestCartService(t)

		err := fx.service.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), 0)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	})

	t.Run("line of another account", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()
		userID, lineID := uuid.New(), uuid.New()

		fx.repos.expectTx(t, fx.txManager)
		fx.repos.carts.EXPECT().UpdateQuantity(ctx, userID, lineID, 3).Return(repository.ErrCartLineNotFound)

		err := fx.service.UpdateQuantity(ctx, userID, lineID, 3)

		assert.True(t, errors.Is(err, domainerrors.ErrCartLineNotFound))
	})
}

func TestCartService_RemoveLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID, lineID := uuid.New(), uuid.New()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.carts.EXPECT().Delete(ctx, userID, lineID).Return(nil)

	assert.NoError(t, fx.service.RemoveLine(ctx, userID, lineID))
}

func TestCartService_GetCart_PricesAvailableLinesOnly(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	hidden := shirt(100, 5)
	hidden.IsActive = false
	lines := []*entity.CartLine{
		{ID: uuid.New(), Quantity: 2, Size: "M", Product: shirt(12.5, 10)},
		{ID: uuid.New(), Quantity: 1, Size: "S", Product: hidden},
		{ID: uuid.New(), Quantity: 3},
	}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.carts.EXPECT().ListByUser(ctx, userID).Return(lines, nil)

	view, err := fx.service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, view.Lines, 3)
	assert.True(t, entity.NewMoney(25).Equal(view.Totals.Subtotal))
	assert.True(t, entity.NewMoney(5).Equal(view.Totals.ShippingFee))
	assert.True(t, entity.NewMoney(30).Equal(view.Totals.Total))
	assert.Equal(t, 2, view.Totals.ItemCount)
}

func TestCartService_GetCart_FollowsLivePrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := shirt(100, 10)
	lines := []*entity.CartLine{{ID: uuid.New(), ProductID: product.ID, Quantity: 2, Size: "M", Product: product}}

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.carts.EXPECT().ListByUser(ctx, userID).Return(lines, nil).Times(2)

	before, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, entity.NewMoney(200).Equal(before.Totals.Subtotal))

	product.Price = entity.NewMoney(80)

	after, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.True(t, entity.NewMoney(160).Equal(after.Totals.Subtotal))
	assert.Equal(t, 2, after.Totals.ItemCount)
}
