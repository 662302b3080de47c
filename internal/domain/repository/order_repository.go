package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusConflict is returned when the stored status no longer matches the expected one.
	ErrOrderStatusConflict = errors.New("order status changed concurrently")
)

// OrderRepository defines the persistence operations for orders and their items.
type OrderRepository interface {
	// Create persists an order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items and shop name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns the orders an account placed, newest first. Empty statuses means all.
	ListByUser(ctx context.Context, userID uuid.UUID, statuses []entity.OrderStatus) ([]*entity.Order, error)

	// ListByShop returns the orders of a shop, newest first. Empty statuses means all.
	ListByShop(ctx context.Context, shopID uuid.UUID, statuses []entity.OrderStatus) ([]*entity.Order, error)

	// UpdateStatus moves an order from one status to another.
	// Returns ErrOrderStatusConflict when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error
}
