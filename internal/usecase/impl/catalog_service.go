package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

const maxPublicPageSize = 100

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct adds a product to a shop the actor manages. The shop must be approved and active.
func (srv *catalogService) CreateProduct(ctx context.Context, actor entity.Actor, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{}
	applyProductInput(product, input)
	product.IsActive = lo.FromPtrOr(input.IsActive, true)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := srv.targetShop(ctx, repoFactory, actor, input.ShopID)
		if err != nil {
			return err
		}
		if !shop.IsPubliclyVisible() {
			return errors.Wrap(domainerrors.ErrShopNotApproved, "shop must be approved and active to list products")
		}

		product.ShopID = shop.ID
		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}
		product.Shop = shop

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("shopID", product.ShopID))

	return product, nil
}

// targetShop resolves the shop a catalog write applies to.
// Owners always write to their own shop; admins may name any shop.
func (srv *catalogService) targetShop(ctx context.Context, repoFactory repository.RepositoryFactory, actor entity.Actor, shopID *uuid.UUID) (*entity.Shop, error) {
	if shopID == nil {
		return findOwnerShop(ctx, repoFactory, actor.UserID)
	}

	shop, err := findShop(ctx, repoFactory, *shopID)
	if err != nil {
		return nil, err
	}
	if !shop.CanBeManagedBy(actor) {
		return nil, errors.Wrap(domainerrors.ErrShopOwnershipViolation, "shop belongs to another owner")
	}

	return shop, nil
}

// UpdateProduct edits a product after re-checking that the actor manages its shop.
func (srv *catalogService) UpdateProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		product, err = srv.managedProduct(ctx, repoFactory, actor, productID)
		if err != nil {
			return err
		}

		applyProductInput(product, input)
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		return repoFactory.ProductRepo().Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product after re-checking ownership.
// Cart lines pointing at it become unavailable; order items keep their snapshot.
func (srv *catalogService) DeleteProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := srv.managedProduct(ctx, repoFactory, actor, productID); err != nil {
			return err
		}

		return repoFactory.ProductRepo().Delete(ctx, productID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("by", actor.UserID))

	return nil
}

func (srv *catalogService) managedProduct(ctx context.Context, repoFactory repository.RepositoryFactory, actor entity.Actor, productID uuid.UUID) (*entity.Product, error) {
	product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.Shop == nil || !product.Shop.CanBeManagedBy(actor) {
		return nil, errors.Wrap(domainerrors.ErrShopOwnershipViolation, "product belongs to another shop")
	}

	return product, nil
}

// ListShopProducts returns every product of the owner's shop, inactive ones included.
func (srv *catalogService) ListShopProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := findOwnerShop(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}

		products, err = repoFactory.ProductRepo().ListByShop(ctx, shop.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// ListPublicProducts returns visible products, newest first.
func (srv *catalogService) ListPublicProducts(ctx context.Context, query *usecase.ProductQuery) ([]*entity.Product, error) {
	filter := repository.ProductFilter{}
	if query != nil {
		filter = repository.ProductFilter{
			ShopID:   query.ShopID,
			Category: query.Category,
			Search:   query.Search,
			Limit:    min(max(query.Limit, 0), maxPublicPageSize),
			Offset:   max(query.Offset, 0),
		}
	}

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		products, err = repoFactory.ProductRepo().ListPublic(ctx, filter)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public products")
	}

	return products, nil
}

// GetPublicProduct returns a product only when it is publicly visible.
func (srv *catalogService) GetPublicProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		product, err = repoFactory.ProductRepo().FindByID(ctx, productID)

		return err
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsPubliclyVisible() {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product is not public")
	}

	return product, nil
}

func validateProductInput(input *usecase.ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	case !input.Price.IsPositive():
		return errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
	case input.CompareAtPrice != nil && input.CompareAtPrice.IsNegative():
		return errors.Wrap(domainerrors.ErrValidationFailed, "compare-at price must not be negative")
	case input.StockQuantity < 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "stock quantity must not be negative")
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price
	product.CompareAtPrice = input.CompareAtPrice
	product.Category = strings.TrimSpace(input.Category)
	product.ImageURL = input.ImageURL
	product.Images = cleanOptions(input.Images)
	product.Sizes = cleanOptions(input.Sizes)
	product.Colors = cleanOptions(input.Colors)
	product.StockQuantity = input.StockQuantity
	if product.ImageURL == "" && len(product.Images) > 0 {
		product.ImageURL = product.Images[0]
	}
}

// cleanOptions trims entries and drops blanks and duplicates, keeping order.
func cleanOptions(values []string) []string {
	return lo.Uniq(lo.FilterMap(values, func(v string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(v)

		return trimmed, trimmed != ""
	}))
}
