package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/config"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Commerce: &config.CommerceConfig{
			Currency:              "USD",
			FreeShippingThreshold: 50,
			ShippingFee:           5,
			OrderNumberPrefix:     "BZR",
			RecentOrdersLimit:     5,
		},
	}
}

// txRepos holds the repository mocks handed out inside mocked transactions.
type txRepos struct {
	users     *mockRepo.MockUserRepository
	auths     *mockRepo.MockAuthRepository
	tokens    *mockRepo.MockRefreshTokenRepository
	roles     *mockRepo.MockRoleRepository
	shops     *mockRepo.MockShopRepository
	products  *mockRepo.MockProductRepository
	carts     *mockRepo.MockCartRepository
	addresses *mockRepo.MockAddressRepository
	orders    *mockRepo.MockOrderRepository
}

func newTxRepos(t *testing.T) *txRepos {
	return &txRepos{
		users:     mockRepo.NewMockUserRepository(t),
		auths:     mockRepo.NewMockAuthRepository(t),
		tokens:    mockRepo.NewMockRefreshTokenRepository(t),
		roles:     mockRepo.NewMockRoleRepository(t),
		shops:     mockRepo.NewMockShopRepository(t),
		products:  mockRepo.NewMockProductRepository(t),
		carts:     mockRepo.NewMockCartRepository(t),
		addresses: mockRepo.NewMockAddressRepository(t),
		orders:    mockRepo.NewMockOrderRepository(t),
	}
}

// expectTx makes every Execute on txManager run its callback against the repository mocks
// and return the callback's error, the way the GORM transaction manager does.
func (r *txRepos) expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(r.users).Maybe()
			factory.EXPECT().AuthRepo().Return(r.auths).Maybe()
			factory.EXPECT().RefreshTokenRepo().Return(r.tokens).Maybe()
			factory.EXPECT().RoleRepo().Return(r.roles).Maybe()
			factory.EXPECT().ShopRepo().Return(r.shops).Maybe()
			factory.EXPECT().ProductRepo().Return(r.products).Maybe()
			factory.EXPECT().CartRepo().Return(r.carts).Maybe()
			factory.EXPECT().AddressRepo().Return(r.addresses).Maybe()
			factory.EXPECT().OrderRepo().Return(r.orders).Maybe()

			return fn(factory)
		})
}
