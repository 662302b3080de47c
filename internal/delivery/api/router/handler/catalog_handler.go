package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ShopUC    usecase.ShopUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves public browsing and the owner's product management.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	shopUC    usecase.ShopUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		shopUC:    params.ShopUC,
		logger:    params.Logger,
	}
}

// ProductListQuery narrows the public product listing
type ProductListQuery struct {
	ShopID   string `query:"shop_id" validate:"omitempty,uuid"`
	Category string `query:"category" validate:"omitempty,max=64"`
	Search   string `query:"search" validate:"omitempty,max=100"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	ShopID         *uuid.UUID    `json:"shop_id"`
	Name           string        `json:"name" validate:"required,max=200"`
	Description    string        `json:"description" validate:"max=5000"`
	Price          entity.Money  `json:"price"`
	CompareAtPrice *entity.Money `json:"compare_at_price"`
	Category       string        `json:"category" validate:"max=64"`
	ImageURL       string        `json:"image_url" validate:"omitempty,url"`
	Images         []string      `json:"images" validate:"omitempty,max=10,dive,url"`
	Sizes          []string      `json:"sizes" validate:"omitempty,max=20,dive,required,max=16"`
	Colors         []string      `json:"colors" validate:"omitempty,max=20,dive,required,max=32"`
	StockQuantity  int           `json:"stock_quantity" validate:"min=0"`
	IsActive       *bool         `json:"is_active"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		ShopID:         r.ShopID,
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		CompareAtPrice: r.CompareAtPrice,
		Category:       r.Category,
		ImageURL:       r.ImageURL,
		Images:         r.Images,
		Sizes:          r.Sizes,
		Colors:         r.Colors,
		StockQuantity:  r.StockQuantity,
		IsActive:       r.IsActive,
	}
}

// ListProducts handles the public product listing
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	var query ProductListQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product query")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationFailed(c, err)
	}

	input := &usecase.ProductQuery{
		Category: query.Category,
		Search:   query.Search,
		Limit:    query.Limit,
		Offset:   query.Offset,
	}
	if query.ShopID != "" {
		shopID := uuid.MustParse(query.ShopID)
		input.ShopID = &shopID
	}

	products, err := h.catalogUC.ListPublicProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toProductResponses(products))
}

// GetProduct handles the public product detail
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.catalogUC.GetPublicProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// ListShops handles the public shop directory
func (h *CatalogHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListPublicShops(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toShopResponses(shops))
}

// GetShop handles the public shop page with its visible products
func (h *CatalogHandler) GetShop(c echo.Context) error {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	ctx := c.Request().Context()
	shop, err := h.shopUC.GetPublicShop(ctx, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.catalogUC.ListPublicProducts(ctx, &usecase.ProductQuery{ShopID: &shopID})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"shop":     toShopResponse(shop),
		"products": toProductResponses(products),
	})
}

// ListOwnProducts handles the owner's product listing, inactive products included
func (h *CatalogHandler) ListOwnProducts(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	products, err := h.catalogUC.ListShopProducts(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toProductResponses(products))
}

// CreateProduct handles adding a product to the caller's shop
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

// UpdateProduct handles editing a product
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), actor, productID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// DeleteProduct handles removing a product
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), actor, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
