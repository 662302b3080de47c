package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrShopOwnerConflict is returned when an owner already has a shop.
	ErrShopOwnerConflict = errors.New("owner already has a shop")
)

// ShopRepository defines the persistence operations for storefronts.
type ShopRepository interface {
	// Create persists a new shop.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop by its ID regardless of its state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByOwnerID retrieves the shop owned by an account.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// Update writes the profile fields of a shop.
	Update(ctx context.Context, shop *entity.Shop) error

	// UpdateFlags writes approval and activity in a single statement.
	UpdateFlags(ctx context.Context, id uuid.UUID, approved, active bool) error

	// Delete removes a shop.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListPublic returns approved, active shops, newest first.
	ListPublic(ctx context.Context) ([]*entity.Shop, error)

	// ListWithOwners returns every shop joined with its owner's contact profile, newest first.
	ListWithOwners(ctx context.Context) ([]*entity.ShopWithOwner, error)

	// Stats aggregates the dashboard figures for a shop.
	Stats(ctx context.Context, shopID uuid.UUID) (*entity.ShopStats, error)
}
