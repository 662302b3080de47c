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
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Shop").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already taken")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidQuantity.WrapMessage("item quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = itemM.ID
			order.Items[i].OrderID = itemM.OrderID
		}
	}

	return nil
}

// FindByID retrieves an order with its items and shop name.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.withDetails(ctx).Where("id = ?", id).First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListByUser returns the orders an account placed, newest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	return repo.list(ctx, "user_id = ?", userID, statuses)
}

// ListByShop returns the orders of a shop, newest first.
func (repo *orderRepository) ListByShop(ctx context.Context, shopID uuid.UUID, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	return repo.list(ctx, "shop_id = ?", shopID, statuses)
}

func (repo *orderRepository) list(ctx context.Context, cond string, arg any, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	query := repo.withDetails(ctx).Where(cond, arg)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", lo.Map(statuses, func(s entity.OrderStatus, _ int) string {
			return s.String()
		}))
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return lo.Map(orderModels, func(m *model.OrderModel, _ int) *entity.Order {
		return toOrderDomain(m)
	}), nil
}

func (repo *orderRepository) withDetails(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_name ASC")
		}).
		Preload("Shop")
}

// UpdateStatus moves an order from one status to another with a compare-and-set.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderStatusConflict
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		ShopID:        data.ShopID,
		OrderNumber:   data.OrderNumber,
		Status:        entity.OrderStatus(data.Status),
		Subtotal:      data.Subtotal,
		ShippingFee:   data.ShippingFee,
		Total:         data.TotalAmount,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		Delivery: entity.DeliverySnapshot{
			RecipientName: data.DeliveryName,
			Phone:         data.DeliveryPhone,
			Address:       data.DeliveryAddress,
			Latitude:      data.DeliveryLatitude,
			Longitude:     data.DeliveryLongitude,
		},
		Customer: entity.CustomerSnapshot{
			Name:  data.CustomerName,
			Phone: data.CustomerPhone,
			Email: data.CustomerEmail,
		},
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Items: lo.Map(data.Items, func(item model.OrderItemModel, _ int) *entity.OrderItem {
			return toOrderItemDomain(&item)
		}),
	}
	if data.Shop != nil {
		order.ShopName = data.Shop.Name
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                data.ID,
		UserID:            data.UserID,
		ShopID:            data.ShopID,
		OrderNumber:       data.OrderNumber,
		Status:            data.Status.String(),
		Subtotal:          data.Subtotal,
		ShippingFee:       data.ShippingFee,
		TotalAmount:       data.Total,
		PaymentMethod:     string(data.PaymentMethod),
		PaymentStatus:     string(data.PaymentStatus),
		DeliveryName:      data.Delivery.RecipientName,
		DeliveryPhone:     data.Delivery.Phone,
		DeliveryAddress:   data.Delivery.Address,
		DeliveryLatitude:  data.Delivery.Latitude,
		DeliveryLongitude: data.Delivery.Longitude,
		CustomerName:      data.Customer.Name,
		CustomerPhone:     data.Customer.Phone,
		CustomerEmail:     data.Customer.Email,
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		Items: lo.Map(data.Items, func(item *entity.OrderItem, _ int) model.OrderItemModel {
			return *fromOrderItemDomain(item)
		}),
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:           data.ID,
		OrderID:      data.OrderID,
		ProductID:    data.ProductID,
		ProductName:  data.ProductName,
		ProductImage: data.ProductImage,
		UnitPrice:    data.Price,
		Quantity:     data.Quantity,
		Size:         data.Size,
		Color:        data.Color,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:           data.ID,
		OrderID:      data.OrderID,
		ProductID:    data.ProductID,
		ProductName:  data.ProductName,
		ProductImage: data.ProductImage,
		Price:        data.UnitPrice,
		Quantity:     data.Quantity,
		Size:         data.Size,
		Color:        data.Color,
	}
}
