package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductInput defines the editable product fields.
type ProductInput struct {
	ShopID         *uuid.UUID // Only admins may target a shop other than their own.
	Name           string
	Description    string
	Price          entity.Money
	CompareAtPrice *entity.Money
	Category       string
	ImageURL       string
	Images         []string
	Sizes          []string
	Colors         []string
	StockQuantity  int
	IsActive       *bool // Nil means active on create and unchanged on update.
}

// ProductQuery narrows public catalog listings.
type ProductQuery struct {
	ShopID   *uuid.UUID
	Category string
	Search   string
	Limit    int
	Offset   int
}

// CatalogUsecase defines the product management and browsing operations.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, actor entity.Actor, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID) error
	ListShopProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	ListPublicProducts(ctx context.Context, query *ProductQuery) ([]*entity.Product, error)
	GetPublicProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
}
