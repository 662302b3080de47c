package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC      usecase.AccountUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Logger         *slog.Logger
}

// AccountHandler serves the caller's own profile and access checks.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	auth      *middleware.AuthMiddleware
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		auth:      params.AuthMiddleware,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest represents the editable profile fields. Omitted fields stay unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
}

// AccessQuery selects the role a client wants to enter.
type AccessQuery struct {
	Require string `query:"require" validate:"omitempty,role"`
}

// GetProfile returns the caller's account and current role
func (h *AccountHandler) GetProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{
		User: toUserResponse(profile.User),
		Role: profile.Role,
	})
}

// UpdateProfile edits the caller's name and phone
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), actor.UserID, &usecase.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// CheckAccess reports the route guard decision for the caller.
// Anonymous callers get the unauthenticated decision rather than an error.
func (h *AccountHandler) CheckAccess(c echo.Context) error {
	var query AccessQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access query")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationFailed(c, err)
	}

	var required *entity.Role
	if query.Require != "" {
		role := entity.Role(query.Require)
		required = &role
	}

	return response.Success(c, http.StatusOK, h.auth.Evaluate(c, required))
}
