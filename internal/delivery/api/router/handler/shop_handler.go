package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler serves the shop owner's storefront.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest represents the request body for opening a shop
type CreateShopRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=2000"`
	LogoURL     string   `json:"logo_url" validate:"omitempty,url"`
	BannerURL   string   `json:"banner_url" validate:"omitempty,url"`
	Phone       string   `json:"phone" validate:"max=32"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Address     string   `json:"address" validate:"max=300"`
	Latitude    *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
}

// UpdateShopRequest represents the editable shop fields. Omitted fields stay unchanged.
type UpdateShopRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	LogoURL     *string  `json:"logo_url" validate:"omitempty,url"`
	BannerURL   *string  `json:"banner_url" validate:"omitempty,url"`
	Phone       *string  `json:"phone" validate:"omitempty,max=32"`
	Email       *string  `json:"email" validate:"omitempty,email"`
	Address     *string  `json:"address" validate:"omitempty,max=300"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// CreateShop opens the caller's shop, pending admin approval
func (h *ShopHandler) CreateShop(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), actor.UserID, &usecase.CreateShopInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toShopResponse(shop))
}

// UpdateShop edits the caller's shop profile
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), actor.UserID, &usecase.UpdateShopInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// Dashboard returns the owner landing view. An owner without a shop gets a null shop.
func (h *ShopHandler) Dashboard(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dashboard, err := h.shopUC.GetOwnerDashboard(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDashboardResponse(dashboard))
}
