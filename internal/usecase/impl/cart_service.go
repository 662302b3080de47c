package impl

import (
	"context"
	"log/slog"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/pricing"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	policy    pricing.Policy
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		policy:    pricingPolicy(params.Config),
		logger:    params.Logger,
	}
}

func pricingPolicy(cfg *config.Config) pricing.Policy {
	if cfg == nil || cfg.Commerce == nil {
		return pricing.NewPolicy(0, 0)
	}

	return pricing.NewPolicy(cfg.Commerce.FreeShippingThreshold, cfg.Commerce.ShippingFee)
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddToCart puts a visible product in the cart. Repeated adds of the same variant sum into one line.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*entity.CartLine, error) {
	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be at least 1")
	}

	line := &entity.CartLine{
		UserID:    userID,
		ProductID: input.ProductID,
		Size:      input.Size,
		Color:     input.Color,
		Quantity:  input.Quantity,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := findVisibleProduct(ctx, repoFactory, input.ProductID)
		if err != nil {
			return err
		}
		if !product.AcceptsVariant(input.Size, input.Color) {
			return errors.Wrap(domainerrors.ErrInvalidVariant, "size or color not offered for this product")
		}

		if err := repoFactory.CartRepo().Upsert(ctx, line); err != nil {
			return errors.Wrap(err, "failed to add cart line")
		}
		line.Product = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add to cart", slog.Any("userID", userID), slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	return line, nil
}

// UpdateQuantity overwrites a line's quantity. Values below 1 are rejected.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be at least 1")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return mapCartLineError(repoFactory.CartRepo().UpdateQuantity(ctx, userID, lineID, quantity))
	})
}

// RemoveLine deletes one line of the cart.
func (srv *cartService) RemoveLine(ctx context.Context, userID, lineID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return mapCartLineError(repoFactory.CartRepo().Delete(ctx, userID, lineID))
	})
}

// GetCart returns the cart with live product data. Unavailable lines stay listed but are not priced.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	var lines []*entity.CartLine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		lines, err = repoFactory.CartRepo().ListByUser(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return &usecase.CartView{
		Lines:  lines,
		Totals: srv.policy.Quote(lines),
	}, nil
}

func mapCartLineError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrCartLineNotFound) {
		return errors.Wrap(domainerrors.ErrCartLineNotFound, "cart line not found")
	}

	return errors.Wrap(err, "failed to change cart line")
}

func findVisibleProduct(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID) (*entity.Product, error) {
	product, err := repoFactory.ProductRepo().FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsPubliclyVisible() {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product is not available")
	}

	return product, nil
}
