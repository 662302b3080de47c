package impl

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"go.uber.org/fx"
)

const defaultRecentOrdersLimit = 5

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager         repository.TransactionManager
	publisher         service.EventPublisher
	recentOrdersLimit int
	logger            *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	limit := defaultRecentOrdersLimit
	if params.Config != nil && params.Config.Commerce != nil && params.Config.Commerce.RecentOrdersLimit > 0 {
		limit = params.Config.Commerce.RecentOrdersLimit
	}

	return &shopService{
		txManager:         params.TxManager,
		publisher:         params.Publisher,
		recentOrdersLimit: limit,
		logger:            params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop opens a shop in the created state, awaiting review.
func (srv *shopService) CreateShop(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateShopInput) (*entity.Shop, error) {
	shop := &entity.Shop{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		LogoURL:     input.LogoURL,
		BannerURL:   input.BannerURL,
		Phone:       input.Phone,
		Email:       input.Email,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}
	if shop.Name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "shop name is required")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		_, err := shopRepo.FindByOwnerID(ctx, ownerID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrShopAlreadyExists, "owner already has a shop")
		}
		if !errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(err, "failed to check existing shop")
		}

		if err := shopRepo.Create(ctx, shop); err != nil {
			if errors.Is(err, repository.ErrShopOwnerConflict) {
				return errors.Wrap(domainerrors.ErrShopAlreadyExists, "owner already has a shop")
			}

			return errors.Wrap(err, "failed to create shop")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create shop", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Shop created", slog.Any("shopID", shop.ID), slog.Any("ownerID", ownerID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        service.EventShopCreated,
		AggregateID: shop.ID.String(),
		ShopID:      shop.ID.String(),
		UserID:      ownerID.String(),
		Payload:     map[string]any{"name": shop.Name},
	})

	return shop, nil
}

// UpdateShop edits the profile fields of the owner's shop.
func (srv *shopService) UpdateShop(ctx context.Context, ownerID uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shop, err = findOwnerShop(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}

		applyShopInput(shop, input)
		if strings.TrimSpace(shop.Name) == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "shop name is required")
		}

		return repoFactory.ShopRepo().Update(ctx, shop)
	})
	if err != nil {
		return nil, err
	}

	return shop, nil
}

func applyShopInput(shop *entity.Shop, input *usecase.UpdateShopInput) {
	setIfPresent := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setIfPresent(&shop.Name, input.Name)
	setIfPresent(&shop.Description, input.Description)
	setIfPresent(&shop.LogoURL, input.LogoURL)
	setIfPresent(&shop.BannerURL, input.BannerURL)
	setIfPresent(&shop.Phone, input.Phone)
	setIfPresent(&shop.Email, input.Email)
	setIfPresent(&shop.Address, input.Address)
	if input.Latitude != nil {
		shop.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		shop.Longitude = input.Longitude
	}
}

// GetOwnerDashboard returns the owner's shop, its stats and latest orders.
// An owner without a shop gets an empty dashboard, not an error.
func (srv *shopService) GetOwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*usecase.OwnerDashboard, error) {
	dashboard := &usecase.OwnerDashboard{
		Shop:         mo.None[*entity.Shop](),
		Stats:        &entity.ShopStats{DeliveredRevenue: entity.ZeroMoney},
		RecentOrders: []*entity.Order{},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := repoFactory.ShopRepo().FindByOwnerID(ctx, ownerID)
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find owner shop")
		}
		dashboard.Shop = mo.Some(shop)

		stats, err := repoFactory.ShopRepo().Stats(ctx, shop.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load shop stats")
		}
		dashboard.Stats = stats

		orders, err := repoFactory.OrderRepo().ListByShop(ctx, shop.ID, nil)
		if err != nil {
			return errors.Wrap(err, "failed to load recent orders")
		}
		dashboard.RecentOrders = lo.Slice(orders, 0, srv.recentOrdersLimit)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load owner dashboard", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	return dashboard, nil
}

// ApproveShop approves and activates a shop. Approving an approved, active shop is a no-op.
func (srv *shopService) ApproveShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins may approve shops")
	}

	var shop *entity.Shop
	changed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shop, err = findShop(ctx, repoFactory, shopID)
		if err != nil {
			return err
		}

		if changed = shop.Approve(); !changed {
			return nil
		}

		return repoFactory.ShopRepo().UpdateFlags(ctx, shop.ID, shop.Approved, shop.IsActive)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.log(ctx).Info("Shop approved", slog.Any("shopID", shopID), slog.Any("by", actor.UserID))
		publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
			Type:        service.EventShopApproved,
			AggregateID: shopID.String(),
			ShopID:      shopID.String(),
			UserID:      shop.OwnerID.String(),
		})
	}

	return shop, nil
}

// RejectShop deletes a shop still awaiting review together with its products.
func (srv *shopService) RejectShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID, confirmed bool) error {
	if !actor.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "only admins may reject shops")
	}
	if !confirmed {
		return errors.Wrap(domainerrors.ErrRejectionNotConfirmed, "rejection must be confirmed")
	}

	var ownerID uuid.UUID
	var removedProducts int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := findShop(ctx, repoFactory, shopID)
		if err != nil {
			return err
		}
		if shop.State() != entity.ShopStateCreated {
			return errors.Wrapf(domainerrors.ErrInvalidShopState, "cannot reject a shop in state %s", shop.State())
		}
		ownerID = shop.OwnerID

		removedProducts, err = repoFactory.ProductRepo().DeleteByShopID(ctx, shopID)
		if err != nil {
			return errors.Wrap(err, "failed to delete shop products")
		}

		if err := repoFactory.ShopRepo().Delete(ctx, shopID); err != nil {
			return errors.Wrap(err, "failed to delete shop")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to reject shop", slog.Any("shopID", shopID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Shop rejected", slog.Any("shopID", shopID), slog.Int64("removedProducts", removedProducts))
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        service.EventShopRejected,
		AggregateID: shopID.String(),
		ShopID:      shopID.String(),
		UserID:      ownerID.String(),
		Payload:     map[string]any{"removed_products": removedProducts},
	})

	return nil
}

// DeactivateShop hides an approved shop. Its approval is kept.
func (srv *shopService) DeactivateShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins may deactivate shops")
	}

	var shop *entity.Shop
	changed := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shop, err = findShop(ctx, repoFactory, shopID)
		if err != nil {
			return err
		}
		if !shop.Approved {
			return errors.Wrap(domainerrors.ErrInvalidShopState, "only approved shops can be deactivated")
		}

		if changed = shop.Deactivate(); !changed {
			return nil
		}

		return repoFactory.ShopRepo().UpdateFlags(ctx, shop.ID, shop.Approved, shop.IsActive)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		srv.log(ctx).Info("Shop deactivated", slog.Any("shopID", shopID), slog.Any("by", actor.UserID))
		publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
			Type:        service.EventShopDeactivated,
			AggregateID: shopID.String(),
			ShopID:      shopID.String(),
			UserID:      shop.OwnerID.String(),
		})
	}

	return shop, nil
}

// ListAllShops returns every shop with its owner's contact details, for admins.
func (srv *shopService) ListAllShops(ctx context.Context, actor entity.Actor) ([]*entity.ShopWithOwner, error) {
	if !actor.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins may list all shops")
	}

	var shops []*entity.ShopWithOwner
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shops, err = repoFactory.ShopRepo().ListWithOwners(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// ListPublicShops returns approved, active shops.
func (srv *shopService) ListPublicShops(ctx context.Context) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shops, err = repoFactory.ShopRepo().ListPublic(ctx)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public shops")
	}

	return shops, nil
}

// GetPublicShop returns a shop only when it is publicly visible.
func (srv *shopService) GetPublicShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		shop, err = findShop(ctx, repoFactory, shopID)

		return err
	})
	if err != nil {
		return nil, err
	}
	if !shop.IsPubliclyVisible() {
		return nil, errors.Wrap(domainerrors.ErrShopNotFound, "shop is not public")
	}

	return shop, nil
}

func findShop(ctx context.Context, repoFactory repository.RepositoryFactory, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := repoFactory.ShopRepo().FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "shop not found")
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

func findOwnerShop(ctx context.Context, repoFactory repository.RepositoryFactory, ownerID uuid.UUID) (*entity.Shop, error) {
	shop, err := repoFactory.ShopRepo().FindByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShopNotFound, "owner has no shop")
		}

		return nil, errors.Wrap(err, "failed to find owner shop")
	}

	return shop, nil
}
