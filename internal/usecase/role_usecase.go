package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleUsecase resolves and changes account roles.
type RoleUsecase interface {
	// ResolveRole returns the role of an account. It never fails: a missing
	// assignment or a lookup error both resolve to customer.
	ResolveRole(ctx context.Context, userID uuid.UUID) entity.Role

	// AssignRole replaces the role of an account. Admin only.
	AssignRole(ctx context.Context, actor entity.Actor, userID uuid.UUID, role entity.Role) (*entity.RoleAssignment, error)
}
