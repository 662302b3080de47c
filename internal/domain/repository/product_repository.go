package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductFilter narrows public catalog listings.
type ProductFilter struct {
	ShopID   *uuid.UUID
	Category string
	Search   string
	Limit    int
	Offset   int
}

// ProductRepository defines the persistence operations for catalog items.
// Reads populate entity.Product.Shop so visibility can be evaluated.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its shop regardless of visibility.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves several products with their shops. Missing IDs are silently skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// Update writes every editable field of a product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByShopID removes every product of a shop and returns how many were removed.
	DeleteByShopID(ctx context.Context, shopID uuid.UUID) (int64, error)

	// ListByShop returns every product of a shop including inactive ones, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error)

	// ListPublic returns publicly visible products, newest first.
	ListPublic(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// DecrementStock subtracts quantity only if enough stock remains.
	// Returns ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock returns quantity to stock. A deleted product is silently skipped.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}
