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
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// ListByUser returns the account's lines, oldest first, with live product and shop data.
func (repo *cartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var lineModels []*model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lineModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	return repo.attachProducts(ctx, lineModels)
}

// FindByID retrieves one line of the account.
func (repo *cartRepository) FindByID(ctx context.Context, userID, lineID uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartItemModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		First(&lineM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	lines, err := repo.attachProducts(ctx, []*model.CartItemModel{&lineM})
	if err != nil {
		return nil, err
	}

	return lines[0], nil
}

// attachProducts loads the live products of the lines in one query.
// product_id has no foreign key, so a deleted product leaves Product nil.
func (repo *cartRepository) attachProducts(ctx context.Context, lineModels []*model.CartItemModel) ([]*entity.CartLine, error) {
	productIDs := lo.Uniq(lo.Map(lineModels, func(m *model.CartItemModel, _ int) uuid.UUID {
		return m.ProductID
	}))

	products, err := NewProductRepository(repo.db).FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(products, func(p *entity.Product) uuid.UUID {
		return p.ID
	})

	return lo.Map(lineModels, func(m *model.CartItemModel, _ int) *entity.CartLine {
		line := toCartLineDomain(m)
		line.Product = byID[m.ProductID]

		return line
	}), nil
}

// Upsert inserts the line or adds its quantity to an existing (user, product, size, color) line.
func (repo *cartRepository) Upsert(ctx context.Context, line *entity.CartLine) error {
	lineM := fromCartLineDomain(line)
	now := time.Now()
	lineM.CreatedAt = now
	lineM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "size"}, {Name: "color"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
					"updated_at": gorm.Expr("excluded.updated_at"),
				}),
			},
			clause.Returning{},
		).
		Create(lineM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart line")
	}

	line.ID = lineM.ID
	line.Quantity = lineM.Quantity
	line.CreatedAt = lineM.CreatedAt
	line.UpdatedAt = lineM.UpdatedAt

	return nil
}

// UpdateQuantity overwrites the quantity of a line.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		Updates(map[string]any{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update cart line quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// Delete removes one line.
func (repo *cartRepository) Delete(ctx context.Context, userID, lineID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteByIDs removes the given lines of the account.
func (repo *cartRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, lineIDs []uuid.UUID) error {
	if len(lineIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, lineIDs).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete cart lines")
	}

	return nil
}

// --- Mapper Functions ---

func toCartLineDomain(data *model.CartItemModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Size:      data.Size,
		Color:     data.Color,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartLineDomain(data *entity.CartLine) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Size:      data.Size,
		Color:     data.Color,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
