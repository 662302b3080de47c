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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	RoleUC usecase.RoleUsecase
	Logger *slog.Logger
}

// AdminHandler serves shop moderation and role management.
type AdminHandler struct {
	shopUC usecase.ShopUsecase
	roleUC usecase.RoleUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		shopUC: params.ShopUC,
		roleUC: params.RoleUC,
		logger: params.Logger,
	}
}

// RejectShopRequest must confirm the irreversible rejection
type RejectShopRequest struct {
	Confirmed bool `json:"confirmed"`
}

// AssignRoleRequest represents the request body for changing an account's role
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,role"`
}

// ListShops returns every shop with its owner's contact profile
func (h *AdminHandler) ListShops(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shops, err := h.shopUC.ListAllShops(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toAdminShopResponses(shops))
}

// ApproveShop approves and activates a shop
func (h *AdminHandler) ApproveShop(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	shop, err := h.shopUC.ApproveShop(c.Request().Context(), actor, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// RejectShop deletes a shop awaiting review together with its products
func (h *AdminHandler) RejectShop(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	var req RejectShopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := h.shopUC.RejectShop(c.Request().Context(), actor, shopID, req.Confirmed); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// DeactivateShop hides an approved shop
func (h *AdminHandler) DeactivateShop(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid shop ID")
	}

	shop, err := h.shopUC.DeactivateShop(c.Request().Context(), actor, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// AssignRole replaces the role of an account
func (h *AdminHandler) AssignRole(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req AssignRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	assignment, err := h.roleUC.AssignRole(c.Request().Context(), actor, userID, entity.Role(req.Role))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RoleAssignmentResponse{
		UserID:    assignment.UserID,
		Role:      assignment.Role,
		UpdatedAt: assignment.UpdatedAt,
	})
}
