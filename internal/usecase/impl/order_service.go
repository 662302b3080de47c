package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/pricing"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

const recentTransactionsLimit = 5

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	policy       pricing.Policy
	orderNumbers *pricing.OrderNumberGenerator
	qrCodes      service.QRCodeService
	maps         service.MapService
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCodes   service.QRCodeService
	Maps      service.MapService
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	prefix := ""
	if params.Config != nil && params.Config.Commerce != nil {
		prefix = params.Config.Commerce.OrderNumberPrefix
	}

	return &orderService{
		txManager:    params.TxManager,
		policy:       pricingPolicy(params.Config),
		orderNumbers: pricing.NewOrderNumberGenerator(prefix),
		qrCodes:      params.QRCodes,
		maps:         params.Maps,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// checkoutLine is one validated selection about to become an order item.
type checkoutLine struct {
	product  *entity.Product
	size     string
	color    string
	quantity int
}

// PlaceOrder checks out the cart, a subset of it, or a direct purchase.
// Everything happens in one transaction: lines are re-validated against live products,
// stock is decremented, one order is created per shop and consumed cart lines are removed.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPaymentMethod, "unsupported payment method %q", input.PaymentMethod)
	}
	if input.Direct != nil && input.Direct.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be at least 1")
	}

	srv.log(ctx).Info("Placing order", slog.Any("userID", userID), slog.Bool("direct", input.Direct != nil))

	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		address, err := repoFactory.AddressRepo().FindByID(ctx, userID, input.AddressID)
		if err != nil {
			return mapAddressError(err)
		}

		lines, consumed, err := srv.collectCheckoutLines(ctx, repoFactory, userID, input)
		if err != nil {
			return err
		}

		for _, line := range lines {
			if err := repoFactory.ProductRepo().DecrementStock(ctx, line.product.ID, line.quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return errors.Wrapf(domainerrors.ErrInsufficientStock, "not enough stock for %s", line.product.Name)
				}

				return errors.Wrap(err, "failed to reserve stock")
			}
		}

		orders, err = srv.createShopOrders(ctx, repoFactory, user, address, input, lines)
		if err != nil {
			return err
		}

		if len(consumed) == 0 {
			return nil
		}
		if err := repoFactory.CartRepo().DeleteByIDs(ctx, userID, consumed); err != nil {
			return errors.Wrap(err, "failed to clear checked out cart lines")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	for _, order := range orders {
		srv.log(ctx).Info("Order placed", slog.String("orderNumber", order.OrderNumber), slog.Any("shopID", order.ShopID))
		publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
			Type:        service.EventOrderPlaced,
			AggregateID: order.ID.String(),
			ShopID:      order.ShopID.String(),
			UserID:      order.UserID.String(),
			Payload: map[string]any{
				"order_number": order.OrderNumber,
				"total":        order.Total.StringFixed(2),
				"item_count":   len(order.Items),
			},
		})
	}

	return &usecase.PlaceOrderOutput{Orders: orders}, nil
}

// collectCheckoutLines returns validated lines and the cart line IDs they consume.
func (srv *orderService) collectCheckoutLines(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	userID uuid.UUID,
	input *usecase.PlaceOrderInput,
) ([]checkoutLine, []uuid.UUID, error) {
	if input.Direct != nil {
		product, err := findVisibleProduct(ctx, repoFactory, input.Direct.ProductID)
		if err != nil {
			return nil, nil, err
		}
		line := checkoutLine{product: product, size: input.Direct.Size, color: input.Direct.Color, quantity: input.Direct.Quantity}
		if err := validateCheckoutLine(line); err != nil {
			return nil, nil, err
		}

		return []checkoutLine{line}, nil, nil
	}

	cartLines, err := repoFactory.CartRepo().ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load cart")
	}

	if len(input.LineIDs) > 0 {
		byID := lo.KeyBy(cartLines, func(l *entity.CartLine) uuid.UUID { return l.ID })
		selected := make([]*entity.CartLine, 0, len(input.LineIDs))
		for _, id := range lo.Uniq(input.LineIDs) {
			line, ok := byID[id]
			if !ok {
				return nil, nil, errors.Wrapf(domainerrors.ErrCartLineNotFound, "cart line %s not found", id)
			}
			selected = append(selected, line)
		}
		cartLines = selected
	}

	if len(cartLines) == 0 {
		return nil, nil, errors.Wrap(domainerrors.ErrCartEmpty, "nothing to check out")
	}

	lines := make([]checkoutLine, 0, len(cartLines))
	for _, cartLine := range cartLines {
		if cartLine.Product == nil || !cartLine.Product.IsPubliclyVisible() {
			return nil, nil, errors.Wrapf(domainerrors.ErrCartLineInvalid, "cart line %s refers to an unavailable product", cartLine.ID)
		}
		line := checkoutLine{product: cartLine.Product, size: cartLine.Size, color: cartLine.Color, quantity: cartLine.Quantity}
		if err := validateCheckoutLine(line); err != nil {
			return nil, nil, err
		}
		lines = append(lines, line)
	}

	return lines, lo.Map(cartLines, func(l *entity.CartLine, _ int) uuid.UUID { return l.ID }), nil
}

func validateCheckoutLine(line checkoutLine) error {
	switch {
	case line.quantity < 1:
		return errors.Wrap(domainerrors.ErrInvalidQuantity, "quantity must be at least 1")
	case !line.product.AcceptsVariant(line.size, line.color):
		return errors.Wrapf(domainerrors.ErrCartLineInvalid, "variant no longer offered for %s", line.product.Name)
	case !line.product.HasStock(line.quantity):
		return errors.Wrapf(domainerrors.ErrInsufficientStock, "not enough stock for %s", line.product.Name)
	}

	return nil
}

// createShopOrders groups lines by shop, in first-seen order, and writes one order per shop.
func (srv *orderService) createShopOrders(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	user *entity.User,
	address *entity.Address,
	input *usecase.PlaceOrderInput,
	lines []checkoutLine,
) ([]*entity.Order, error) {
	groups := lo.GroupBy(lines, func(l checkoutLine) uuid.UUID { return l.product.ShopID })
	shopIDs := lo.Uniq(lo.Map(lines, func(l checkoutLine, _ int) uuid.UUID { return l.product.ShopID }))

	delivery := entity.DeliverySnapshot{
		RecipientName: address.FullName,
		Phone:         address.Phone,
		Address:       address.Formatted(),
		Latitude:      address.Latitude,
		Longitude:     address.Longitude,
	}
	customer := entity.CustomerSnapshot{
		Name:  lo.CoalesceOrEmpty(user.Name, address.FullName),
		Phone: lo.CoalesceOrEmpty(user.Phone, address.Phone),
		Email: user.Email,
	}

	orders := make([]*entity.Order, 0, len(shopIDs))
	for _, shopID := range shopIDs {
		items := lo.Map(groups[shopID], func(l checkoutLine, _ int) *entity.OrderItem {
			return &entity.OrderItem{
				ProductID:    l.product.ID,
				ProductName:  l.product.Name,
				ProductImage: l.product.ImageURL,
				UnitPrice:    l.product.Price,
				Quantity:     l.quantity,
				Size:         l.size,
				Color:        l.color,
			}
		})
		totals := srv.policy.QuoteItems(items)

		orderNumber, err := srv.orderNumbers.Next()
		if err != nil {
			return nil, err
		}

		order := &entity.Order{
			UserID:        user.ID,
			ShopID:        shopID,
			OrderNumber:   orderNumber,
			Status:        entity.OrderStatusPending,
			Subtotal:      totals.Subtotal,
			ShippingFee:   totals.ShippingFee,
			Total:         totals.Total,
			PaymentMethod: input.PaymentMethod,
			PaymentStatus: entity.PaymentStatusPending,
			Delivery:      delivery,
			Customer:      customer,
			Notes:         strings.TrimSpace(input.Notes),
			Items:         items,
		}
		if shop := groups[shopID][0].product.Shop; shop != nil {
			order.ShopName = shop.Name
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return nil, errors.Wrap(err, "failed to create order")
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// CancelOrder lets a customer cancel one of their own orders while it is still pending.
func (srv *orderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order
	var previous entity.OrderStatus
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}
		if order.UserID != userID {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}
		if order.Status != entity.OrderStatusPending {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "only pending orders can be cancelled, order is %s", order.Status)
		}
		previous = order.Status

		return srv.transition(ctx, repoFactory, order, entity.OrderStatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	srv.publishStatusChange(ctx, order, previous, userID)

	return order, nil
}

// UpdateStatus moves an order one step along its lifecycle. Only the owner of the
// order's shop or an admin may do this.
func (srv *orderService) UpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order status %q", next)
	}

	var order *entity.Order
	var previous entity.OrderStatus
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() {
			shop, err := findShop(ctx, repoFactory, order.ShopID)
			if err != nil {
				return err
			}
			if !shop.CanBeManagedBy(actor) {
				return errors.Wrap(domainerrors.ErrShopOwnershipViolation, "order belongs to another shop")
			}
		}

		if !order.Status.CanTransitionTo(next) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "cannot move order from %s to %s", order.Status, next)
		}
		previous = order.Status

		return srv.transition(ctx, repoFactory, order, next)
	})
	if err != nil {
		srv.log(ctx).Warn("Order status update rejected", slog.Any("orderID", orderID), slog.String("next", next.String()), slog.Any("error", err))

		return nil, err
	}

	srv.publishStatusChange(ctx, order, previous, actor.UserID)

	return order, nil
}

// transition writes the new status with a compare-and-set and restocks cancelled items.
func (srv *orderService) transition(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order, next entity.OrderStatus) error {
	if err := repoFactory.OrderRepo().UpdateStatus(ctx, order.ID, order.Status, next); err != nil {
		if errors.Is(err, repository.ErrOrderStatusConflict) {
			return errors.Wrap(domainerrors.ErrInvalidStatusTransition, "order status changed concurrently")
		}
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return errors.Wrap(err, "failed to update order status")
	}

	if next == entity.OrderStatusCancelled {
		for _, item := range order.Items {
			if err := repoFactory.ProductRepo().IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to restock cancelled items")
			}
		}
	}

	order.Status = next
	order.UpdatedAt = srv.now()

	return nil
}

func (srv *orderService) publishStatusChange(ctx context.Context, order *entity.Order, previous entity.OrderStatus, by uuid.UUID) {
	srv.log(ctx).Info("Order status changed",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("from", previous.String()),
		slog.String("to", order.Status.String()),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        service.EventOrderStatusChanged,
		AggregateID: order.ID.String(),
		ShopID:      order.ShopID.String(),
		UserID:      order.UserID.String(),
		Payload: map[string]any{
			"order_number": order.OrderNumber,
			"from":         previous.String(),
			"to":           order.Status.String(),
			"changed_by":   by.String(),
		},
	})
}

// ListCustomerOrders returns the account's orders matching the filter, newest first.
func (srv *orderService) ListCustomerOrders(ctx context.Context, userID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error) {
	statuses, err := filterStatuses(filter)
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.OrderRepo().ListByUser(ctx, userID, statuses)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// ListShopOrders returns the orders of the owner's shop matching the filter, newest first.
func (srv *orderService) ListShopOrders(ctx context.Context, ownerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, error) {
	statuses, err := filterStatuses(filter)
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := findOwnerShop(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}

		orders, err = repoFactory.OrderRepo().ListByShop(ctx, shop.ID, statuses)

		return err
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// ShopRevenue summarises delivered revenue of the owner's shop.
// Day and month boundaries are taken in UTC.
func (srv *orderService) ShopRevenue(ctx context.Context, ownerID uuid.UUID) (*usecase.RevenueReport, error) {
	var orders []*entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shop, err := findOwnerShop(ctx, repoFactory, ownerID)
		if err != nil {
			return err
		}

		orders, err = repoFactory.OrderRepo().ListByShop(ctx, shop.ID, nil)

		return err
	})
	if err != nil {
		return nil, err
	}

	return buildRevenueReport(orders, srv.now().UTC()), nil
}

func buildRevenueReport(orders []*entity.Order, now time.Time) *usecase.RevenueReport {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	delivered := lo.Filter(orders, func(o *entity.Order, _ int) bool {
		return o.Status == entity.OrderStatusDelivered
	})
	sumSince := func(since time.Time) entity.Money {
		return lo.Reduce(delivered, func(acc entity.Money, o *entity.Order, _ int) entity.Money {
			if o.CreatedAt.Before(since) {
				return acc
			}

			return acc.Add(o.Total)
		}, entity.ZeroMoney)
	}

	return &usecase.RevenueReport{
		Today:           sumSince(startOfDay),
		ThisMonth:       sumSince(startOfMonth),
		Total:           sumSince(time.Time{}),
		DeliveredOrders: len(delivered),
		TotalOrders:     len(orders),
		RecentTransactions: lo.Map(lo.Slice(delivered, 0, recentTransactionsLimit), func(o *entity.Order, _ int) usecase.RevenueTransaction {
			return usecase.RevenueTransaction{
				OrderID:      o.ID,
				OrderNumber:  o.OrderNumber,
				Amount:       o.Total,
				CustomerName: o.Customer.Name,
				CreatedAt:    o.CreatedAt,
			}
		}),
	}
}

// GetOrder returns an order to its purchaser, the owner of its shop, or an admin.
func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, _, err := srv.viewableOrder(ctx, actor, orderID)

	return order, err
}

func (srv *orderService) viewableOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, *entity.Shop, error) {
	var order *entity.Order
	var shop *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findOrder(ctx, repoFactory, orderID)
		if err != nil {
			return err
		}

		shop, err = repoFactory.ShopRepo().FindByID(ctx, order.ShopID)
		if err != nil && !errors.Is(err, repository.ErrShopNotFound) {
			return errors.Wrap(err, "failed to find order shop")
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if !order.CanBeViewedBy(actor, shop) {
		// Same answer as a missing order, so IDs cannot be probed.
		return nil, nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return order, shop, nil
}

// OrderQRCode renders the hand-over QR code of an order as PNG.
func (srv *orderService) OrderQRCode(ctx context.Context, actor entity.Actor, orderID uuid.UUID) ([]byte, error) {
	order, _, err := srv.viewableOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateOrderQR(service.OrderQRPayload{
		OrderNumber:  order.OrderNumber,
		Total:        order.Total.StringFixed(2),
		CustomerName: order.Customer.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// OrderMap returns the GeoJSON map of an order's delivery point and shop.
func (srv *orderService) OrderMap(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*service.OrderMap, error) {
	order, shop, err := srv.viewableOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}

	orderMap, err := srv.maps.BuildOrderMap(order, shop)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build order map")
	}
	if orderMap == nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "order has no delivery location")
	}

	return orderMap, nil
}

func findOrder(ctx context.Context, repoFactory repository.RepositoryFactory, orderID uuid.UUID) (*entity.Order, error) {
	order, err := repoFactory.OrderRepo().FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func filterStatuses(filter entity.OrderFilter) ([]entity.OrderStatus, error) {
	if filter == "" {
		return nil, nil
	}
	if !filter.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown order filter %q", filter)
	}

	return filter.Statuses(), nil
}
