package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when a second default address would be stored for the same account.
	ErrDefaultAddressConflict = errors.New("account already has a default address")
)

// AddressRepository defines the interface for address book operations.
type AddressRepository interface {
	// Create persists a new address.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address of the account.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Address, error)

	// ListByUser returns the account's addresses, default first then newest.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Update writes every field of an address.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address of the account.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// ClearDefault unsets the default flag on every address of the account.
	ClearDefault(ctx context.Context, userID uuid.UUID) error

	// SetDefault marks a single address as the default.
	SetDefault(ctx context.Context, userID, id uuid.UUID) error

	// CountByUser returns how many addresses the account has.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
