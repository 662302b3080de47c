package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrCartLineNotFound is returned when a cart line is not found for the account.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the persistence operations for cart lines.
// Every operation is scoped to one account.
type CartRepository interface {
	// ListByUser returns the account's lines, oldest first, with live product and shop data.
	// Lines whose product was deleted come back with a nil Product.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// FindByID retrieves one line of the account.
	FindByID(ctx context.Context, userID, lineID uuid.UUID) (*entity.CartLine, error)

	// Upsert inserts the line or, when (user, product, size, color) already exists,
	// adds its quantity to the stored one. The stored line is written back into line.
	Upsert(ctx context.Context, line *entity.CartLine) error

	// UpdateQuantity overwrites the quantity of a line.
	UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error

	// Delete removes one line.
	Delete(ctx context.Context, userID, lineID uuid.UUID) error

	// DeleteByIDs removes the given lines of the account.
	DeleteByIDs(ctx context.Context, userID uuid.UUID, lineIDs []uuid.UUID) error
}
