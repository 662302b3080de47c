package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/pricing"

	"github.com/google/uuid"
)

// AddToCartInput defines a product selection to put in the cart.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
	Size      string
	Color     string
}

// CartView is the cart with live product data and totals over the available lines.
type CartView struct {
	Lines  []*entity.CartLine
	Totals pricing.Totals
}

// CartUsecase defines the cart operations of an account.
type CartUsecase interface {
	AddToCart(ctx context.Context, userID uuid.UUID, input *AddToCartInput) (*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, quantity int) error
	RemoveLine(ctx context.Context, userID, lineID uuid.UUID) error
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}
