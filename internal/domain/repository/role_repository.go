package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when an account has no role assignment row.
var ErrRoleNotFound = errors.New("role assignment not found")

// RoleRepository persists the single role assigned to each account.
type RoleRepository interface {
	// FindByUserID returns the role assignment of an account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error)

	// Upsert creates or replaces the role assignment of an account.
	Upsert(ctx context.Context, assignment *entity.RoleAssignment) error
}
