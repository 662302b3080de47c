package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// RoleServiceParams holds dependencies for RoleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveRole reads the stored role on every call. Missing rows, unknown values
// and lookup failures all resolve to customer.
func (srv *roleService) ResolveRole(ctx context.Context, userID uuid.UUID) entity.Role {
	var assignment *entity.RoleAssignment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		assignment, err = repoFactory.RoleRepo().FindByUserID(ctx, userID)

		return err
	})

	switch {
	case errors.Is(err, repository.ErrRoleNotFound):
		return entity.RoleCustomer
	case err != nil:
		srv.log(ctx).Warn("Role lookup failed, falling back to customer", slog.Any("userID", userID), slog.Any("error", err))

		return entity.RoleCustomer
	case assignment == nil || !assignment.Role.IsValid():
		return entity.RoleCustomer
	default:
		return assignment.Role
	}
}

// AssignRole replaces the role of an account. Only admins may call it.
func (srv *roleService) AssignRole(ctx context.Context, actor entity.Actor, userID uuid.UUID, role entity.Role) (*entity.RoleAssignment, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins may assign roles")
	}
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role %q", role)
	}

	assignment := &entity.RoleAssignment{UserID: userID, Role: role}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return mapUserLookupError(err)
		}

		return repoFactory.RoleRepo().Upsert(ctx, assignment)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to assign role", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to assign role")
	}

	srv.log(ctx).Info("Role assigned", slog.Any("userID", userID), slog.String("role", role.String()), slog.Any("by", actor.UserID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        service.EventRoleAssigned,
		AggregateID: userID.String(),
		UserID:      userID.String(),
		Payload:     map[string]any{"role": role.String(), "assigned_by": actor.UserID.String()},
	})

	return assignment, nil
}
