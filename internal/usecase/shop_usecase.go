package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/samber/mo"
)

// CreateShopInput defines the data required to open a shop.
type CreateShopInput struct {
	Name        string
	Description string
	LogoURL     string
	BannerURL   string
	Phone       string
	Email       string
	Address     string
	Latitude    *float64
	Longitude   *float64
}

// UpdateShopInput defines the editable shop profile fields. Nil fields are left unchanged.
type UpdateShopInput struct {
	Name        *string
	Description *string
	LogoURL     *string
	BannerURL   *string
	Phone       *string
	Email       *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
}

// OwnerDashboard is the shop owner's landing view.
// Shop is absent when the owner has not created one yet.
type OwnerDashboard struct {
	Shop         mo.Option[*entity.Shop]
	Stats        *entity.ShopStats
	RecentOrders []*entity.Order
}

// ShopUsecase defines the shop lifecycle operations.
type ShopUsecase interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, input *CreateShopInput) (*entity.Shop, error)
	UpdateShop(ctx context.Context, ownerID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)
	GetOwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*OwnerDashboard, error)

	ApproveShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error)
	RejectShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID, confirmed bool) error
	DeactivateShop(ctx context.Context, actor entity.Actor, shopID uuid.UUID) (*entity.Shop, error)
	ListAllShops(ctx context.Context, actor entity.Actor) ([]*entity.ShopWithOwner, error)

	ListPublicShops(ctx context.Context) ([]*entity.Shop, error)
	GetPublicShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)
}
