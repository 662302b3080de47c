package handler

import (
	"encoding/json"
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

const mimeGeoJSON = "application/geo+json"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout, order tracking and the shop order pipeline.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// DirectPurchaseRequest is a "buy now" selection
type DirectPurchaseRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size" validate:"max=16"`
	Color     string    `json:"color" validate:"max=32"`
}

// PlaceOrderRequest represents the request body for checkout
type PlaceOrderRequest struct {
	AddressID     uuid.UUID              `json:"address_id" validate:"required"`
	PaymentMethod string                 `json:"payment_method" validate:"required,payment_method"`
	Notes         string                 `json:"notes" validate:"max=500"`
	LineIDs       []uuid.UUID            `json:"line_ids"`
	Direct        *DirectPurchaseRequest `json:"direct"`
}

// OrderListQuery selects a subset of orders
type OrderListQuery struct {
	Status string `query:"status" validate:"order_filter"`
}

// UpdateStatusRequest represents the request body for advancing an order
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

// PlaceOrder checks out the cart, or a direct purchase, into one order per shop
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	input := &usecase.PlaceOrderInput{
		AddressID:     req.AddressID,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
		LineIDs:       req.LineIDs,
	}
	if req.Direct != nil {
		input.Direct = &usecase.DirectPurchase{
			ProductID: req.Direct.ProductID,
			Quantity:  req.Direct.Quantity,
			Size:      req.Direct.Size,
			Color:     req.Direct.Color,
		}
	}

	out, err := h.orderUC.PlaceOrder(c.Request().Context(), actor.UserID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponses(out.Orders))
}

// ListOrders returns the caller's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, ok, err := h.bindFilter(c)
	if !ok {
		return err
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), actor.UserID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toOrderResponses(orders))
}

// GetOrder returns one order visible to the caller
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// CancelOrder cancels the caller's pending order
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), actor.UserID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// OrderQRCode renders the hand-over QR code as PNG
func (h *OrderHandler) OrderQRCode(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	png, err := h.orderUC.OrderQRCode(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// OrderMap returns the delivery map of an order as GeoJSON
func (h *OrderHandler) OrderMap(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	orderMap, err := h.orderUC.OrderMap(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"geojson":     json.RawMessage(orderMap.GeoJSON),
		"distance_km": orderMap.DistanceKm,
	})
}

// OrderGeoJSON returns the raw FeatureCollection for map clients
func (h *OrderHandler) OrderGeoJSON(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	orderMap, err := h.orderUC.OrderMap(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, orderMap.GeoJSON)
}

// ListShopOrders returns the orders of the caller's shop
func (h *OrderHandler) ListShopOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, ok, err := h.bindFilter(c)
	if !ok {
		return err
	}

	orders, err := h.orderUC.ListShopOrders(c.Request().Context(), actor.UserID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, toOrderResponses(orders))
}

// UpdateStatus advances an order one step along the status pipeline, or cancels it
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), actor, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order))
}

// Revenue returns the delivered revenue report of the caller's shop
func (h *OrderHandler) Revenue(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	report, err := h.orderUC.ShopRevenue(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRevenueResponse(report))
}

// bindFilter reads ?status=; ok is false when a response was already written.
func (h *OrderHandler) bindFilter(c echo.Context) (entity.OrderFilter, bool, error) {
	var query OrderListQuery
	if err := c.Bind(&query); err != nil {
		return "", false, response.BindingError(c, "INVALID_INPUT", "Invalid order query")
	}

	if err := c.Validate(&query); err != nil {
		return "", false, response.ValidationFailed(c, err)
	}

	return entity.OrderFilter(query.Status), true, nil
}
