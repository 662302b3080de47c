package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the caller's address book.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest represents the request body for creating or updating an address
type AddressRequest struct {
	FullName     string   `json:"full_name" validate:"required,max=100"`
	Phone        string   `json:"phone" validate:"required,max=32"`
	AddressLine1 string   `json:"address_line1" validate:"required,max=200"`
	AddressLine2 string   `json:"address_line2" validate:"max=200"`
	City         string   `json:"city" validate:"required,max=100"`
	State        string   `json:"state" validate:"max=100"`
	PostalCode   string   `json:"postal_code" validate:"required,max=20"`
	Country      string   `json:"country" validate:"max=100"`
	Latitude     *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	IsDefault    bool     `json:"is_default"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName:     r.FullName,
		Phone:        r.Phone,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
		Country:      r.Country,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		IsDefault:    r.IsDefault,
	}
}

// ListAddresses returns the address book, default first
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toAddressResponses(addresses))
}

// CreateAddress adds an address
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), actor.UserID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(address))
}

// UpdateAddress edits an address
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), actor.UserID, addressID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// DeleteAddress removes an address
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), actor.UserID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// SetDefaultAddress makes an address the default
func (h *AddressHandler) SetDefaultAddress(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.SetDefaultAddress(c.Request().Context(), actor.UserID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
