package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the domain.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByUserID returns the role assignment of an account.
func (repo *roleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RoleAssignment, error) {
	var roleM model.UserRoleModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by user ID")
	}

	return toRoleDomain(&roleM), nil
}

// Upsert creates or replaces the role assignment of an account.
func (repo *roleRepository) Upsert(ctx context.Context, assignment *entity.RoleAssignment) error {
	now := time.Now()
	roleM := &model.UserRoleModel{
		UserID:    assignment.UserID,
		Role:      assignment.Role.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(roleM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot assign role to unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert role")
	}

	assignment.CreatedAt = roleM.CreatedAt
	assignment.UpdatedAt = roleM.UpdatedAt

	return nil
}

func toRoleDomain(data *model.UserRoleModel) *entity.RoleAssignment {
	if data == nil {
		return nil
	}

	return &entity.RoleAssignment{
		UserID:    data.UserID,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
