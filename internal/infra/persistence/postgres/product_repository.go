package postgres

import (
	"context"
	"strings"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Shop").Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("stock quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product with its shop regardless of visibility.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Preload("Shop").Where("id = ?", id).First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves several products with their shops. Missing IDs are skipped.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Shop").
		Where("id IN ?", lo.Uniq(ids)).
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	return toProductDomains(productModels), nil
}

// Update writes every editable field of a product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":             productM.Name,
			"description":      productM.Description,
			"price":            productM.Price,
			"compare_at_price": productM.CompareAtPrice,
			"category":         productM.Category,
			"image_url":        productM.ImageURL,
			"images":           productM.Images,
			"stock_quantity":   productM.StockQuantity,
			"is_active":        productM.IsActive,
			"sizes":            productM.Sizes,
			"colors":           productM.Colors,
			"updated_at":       now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("stock quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = now

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeleteByShopID removes every product of a shop.
func (repo *productRepository) DeleteByShopID(ctx context.Context, shopID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("shop_id = ?", shopID).Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete products by shop ID")
	}

	return result.RowsAffected, nil
}

// ListByShop returns every product of a shop including inactive ones, newest first.
func (repo *productRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Shop").
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&productModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by shop")
	}

	return toProductDomains(productModels), nil
}

// ListPublic returns publicly visible products, newest first.
func (repo *productRepository) ListPublic(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).
		Preload("Shop").
		Joins("JOIN shops ON shops.id = products.shop_id AND shops.is_active AND shops.approved").
		Where("products.is_active = ?", true)

	if filter.ShopID != nil {
		query = query.Where("products.shop_id = ?", *filter.ShopID)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("products.category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(products.name ILIKE ? OR products.description ILIKE ?)", pattern, pattern)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var productModels []*model.ProductModel
	if err := query.Order("products.created_at DESC").Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list public products")
	}

	return toProductDomains(productModels), nil
}

// DecrementStock subtracts quantity only when enough stock remains.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		UpdateColumns(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement product stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// IncrementStock returns quantity to stock. A deleted product is silently skipped.
func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity + ?", quantity),
			"updated_at":     time.Now(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to increment product stock")
	}

	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	return lo.Map(models, func(m *model.ProductModel, _ int) *entity.Product {
		return toProductDomain(m)
	})
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		ShopID:        data.ShopID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Category:      data.Category,
		ImageURL:      data.ImageURL,
		Images:        nonNilStrings(data.Images),
		StockQuantity: data.StockQuantity,
		IsActive:      data.IsActive,
		Sizes:         nonNilStrings(data.Sizes),
		Colors:        nonNilStrings(data.Colors),
		Rating:        data.Rating,
		TotalReviews:  data.TotalReviews,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Shop:          toShopDomain(data.Shop),
	}
	if data.CompareAtPrice.Valid {
		compare := data.CompareAtPrice.Decimal
		product.CompareAtPrice = &compare
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:            data.ID,
		ShopID:        data.ShopID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		Category:      data.Category,
		ImageURL:      data.ImageURL,
		Images:        datatypes.JSONSlice[string](nonNilStrings(data.Images)),
		StockQuantity: data.StockQuantity,
		IsActive:      data.IsActive,
		Sizes:         datatypes.JSONSlice[string](nonNilStrings(data.Sizes)),
		Colors:        datatypes.JSONSlice[string](nonNilStrings(data.Colors)),
		Rating:        data.Rating,
		TotalReviews:  data.TotalReviews,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.CompareAtPrice != nil {
		productM.CompareAtPrice = decimal.NewNullDecimal(*data.CompareAtPrice)
	}

	return productM
}

// nonNilStrings keeps jsonb columns as [] rather than null.
func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
