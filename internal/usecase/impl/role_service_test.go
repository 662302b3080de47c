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

type roleServiceFixtures struct {
	service   usecase.RoleUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *txRepos
	publisher *mockSvc.MockEventPublisher
}

func createTestRoleService(t *testing.T) roleServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return roleServiceFixtures{
		service: NewRoleService(RoleServiceParams{
			TxManager: txManager,
			Publisher: publisher,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		repos:     newTxRepos(t),
		publisher: publisher,
	}
}

func TestRoleService_ResolveRole(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		assignment *entity.RoleAssignment
		err        error
		want       entity.Role
	}{
		{"stored role", &entity.RoleAssignment{UserID: userID, Role: entity.RoleShopOwner}, nil, entity.RoleShopOwner},
		{"no assignment", nil, repository.ErrRoleNotFound, entity.RoleCustomer},
		{"lookup failure falls back", nil, errors.New("connection reset"), entity.RoleCustomer},
		{"unknown stored value", &entity.RoleAssignment{UserID: userID, Role: "superuser"}, nil, entity.RoleCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRoleService(t)
			ctx := context.Background()

			fx.repos.expectTx(t, fx.txManager)
			fx.repos.roles.EXPECT().FindByUserID(ctx, userID).Return(tt.assignment, tt.err)

			assert.Equal(t, tt.want, fx.service.ResolveRole(ctx, userID))
		})
	}
}

func TestRoleService_AssignRole_Success(t *testing.T) {
	fx := createTestRoleService(t)

	ctx := context.Background()
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}
	userID := uuid.New()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.repos.roles.EXPECT().Upsert(ctx, &entity.RoleAssignment{UserID: userID, Role: entity.RoleShopOwner}).Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == service.EventRoleAssigned && event.UserID == userID.String()
		})).
		Return(errors.New("broker unavailable"))

	assignment, err := fx.service.AssignRole(ctx, admin, userID, entity.RoleShopOwner)

	require.NoError(t, err, "publish failures must not fail the assignment")
	assert.Equal(t, entity.RoleShopOwner, assignment.Role)
}

func TestRoleService_AssignRole_Rejected(t *testing.T) {
	fx := createTestRoleService(t)

	ctx := context.Background()
	owner := entity.Actor{UserID: uuid.New(), Role: entity.RoleShopOwner}
	admin := entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}

	_, err := fx.service.AssignRole(ctx, owner, uuid.New(), entity.RoleAdmin)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	_, err = fx.service.AssignRole(ctx, admin, uuid.New(), "superuser")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRoleService_AssignRole_UnknownUser(t *testing.T) {
	fx := createTestRoleService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.repos.expectTx(t, fx.txManager)
	fx.repos.users.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	assignment, err := fx.service.AssignRole(ctx, entity.Actor{UserID: uuid.New(), Role: entity.RoleAdmin}, userID, entity.RoleCustomer)

	assert.Nil(t, assignment)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
