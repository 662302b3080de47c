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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// shopRepository implements the domain.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create persists a new shop.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShopOwnerConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByID retrieves a shop by its ID regardless of its state.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByOwnerID retrieves the shop owned by an account.
func (repo *shopRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "owner_id = ?", ownerID)
}

func (repo *shopRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// Update writes the profile fields of a shop. Flags and ratings are left untouched.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Updates(map[string]any{
			"name":        shop.Name,
			"description": shop.Description,
			"logo_url":    shop.LogoURL,
			"banner_url":  shop.BannerURL,
			"phone":       shop.Phone,
			"email":       shop.Email,
			"address":     shop.Address,
			"latitude":    shop.Latitude,
			"longitude":   shop.Longitude,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	shop.UpdatedAt = now

	return nil
}

// UpdateFlags writes approval and activity in a single statement.
func (repo *shopRepository) UpdateFlags(ctx context.Context, id uuid.UUID, approved, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"approved":   approved,
			"is_active":  active,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop flags")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// Delete removes a shop.
func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidShopState.WrapMessage("shop still has dependent records")
		}

		return errors.Wrap(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// ListPublic returns approved, active shops, newest first.
func (repo *shopRepository) ListPublic(ctx context.Context) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ? AND approved = ?", true, true).
		Order("created_at DESC").
		Find(&shopModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public shops")
	}

	return lo.Map(shopModels, func(m *model.ShopModel, _ int) *entity.Shop {
		return toShopDomain(m)
	}), nil
}

// ListWithOwners returns every shop joined with its owner's contact profile, newest first.
func (repo *shopRepository) ListWithOwners(ctx context.Context) ([]*entity.ShopWithOwner, error) {
	var shopModels []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at DESC").
		Find(&shopModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops with owners")
	}

	return lo.Map(shopModels, func(m *model.ShopModel, _ int) *entity.ShopWithOwner {
		view := &entity.ShopWithOwner{Shop: *toShopDomain(m)}
		if m.Owner != nil {
			view.OwnerName = m.Owner.Name
			view.OwnerEmail = m.Owner.Email
			view.OwnerPhone = m.Owner.Phone
		}

		return view
	}), nil
}

type productCounts struct {
	ProductCount       int64
	ActiveProductCount int64
}

type orderCounts struct {
	OrderCount        int64
	OngoingOrderCount int64
	DeliveredRevenue  decimal.Decimal
}

// Stats aggregates the dashboard figures for a shop.
func (repo *shopRepository) Stats(ctx context.Context, shopID uuid.UUID) (*entity.ShopStats, error) {
	db := repo.db.WithContext(ctx)

	var products productCounts
	err := db.Model(&model.ProductModel{}).
		Select("COUNT(*) AS product_count, COUNT(*) FILTER (WHERE is_active) AS active_product_count").
		Where("shop_id = ?", shopID).
		Scan(&products).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count shop products")
	}

	var orders orderCounts
	err = db.Model(&model.OrderModel{}).
		Select(
			"COUNT(*) AS order_count, "+
				"COUNT(*) FILTER (WHERE status IN ?) AS ongoing_order_count, "+
				"COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0) AS delivered_revenue",
			[]string{
				entity.OrderStatusPending.String(),
				entity.OrderStatusPacked.String(),
				entity.OrderStatusShipped.String(),
			},
			entity.OrderStatusDelivered.String(),
		).
		Where("shop_id = ?", shopID).
		Scan(&orders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate shop orders")
	}

	return &entity.ShopStats{
		ProductCount:       products.ProductCount,
		ActiveProductCount: products.ActiveProductCount,
		OrderCount:         orders.OrderCount,
		OngoingOrderCount:  orders.OngoingOrderCount,
		DeliveredRevenue:   orders.DeliveredRevenue,
	}, nil
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		LogoURL:      data.LogoURL,
		BannerURL:    data.BannerURL,
		Phone:        data.Phone,
		Email:        data.Email,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsActive:     data.IsActive,
		Approved:     data.Approved,
		Rating:       data.Rating,
		TotalReviews: data.TotalReviews,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Name:         data.Name,
		Description:  data.Description,
		LogoURL:      data.LogoURL,
		BannerURL:    data.BannerURL,
		Phone:        data.Phone,
		Email:        data.Email,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsActive:     data.IsActive,
		Approved:     data.Approved,
		Rating:       data.Rating,
		TotalReviews: data.TotalReviews,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
