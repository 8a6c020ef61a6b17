package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// callbackTokenHeader carries the shared secret the payment provider presents
// on callback requests.
const callbackTokenHeader = "X-Callback-Token"

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc            usecase.OrderUsecase
	callbackToken string
	logger        *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, cfg *config.Config, logger *slog.Logger) *OrderHandler {
	h := &OrderHandler{uc: uc, logger: logger}
	if cfg != nil && cfg.Payment != nil {
		h.callbackToken = cfg.Payment.CallbackToken
	}

	return h
}

type checkoutRequest struct {
	AddressID uuid.UUID `json:"addressId" validate:"required"`
	Delivery  string    `json:"delivery" validate:"required,oneof=standard express overnight"`
	Payment   string    `json:"payment" validate:"required,oneof=card upi netbanking wallet cod"`
}

// Checkout converts the actor's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.Checkout(c.Request().Context(), actor, usecase.CheckoutInput{
		AddressID: req.AddressID,
		Delivery:  entity.DeliveryMethod(req.Delivery),
		Payment:   entity.PaymentMethod(req.Payment),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order))
}

type orderListResponse struct {
	Orders     []orderView        `json:"orders"`
	Pagination usecase.Pagination `json:"pagination"`
}

// ListOrders returns the actor's order page, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	input := usecase.ListOrdersInput{
		Page:  queryInt(c, "page"),
		Limit: queryInt(c, "limit"),
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		input.Status = &status
	}

	output, err := h.uc.ListOrders(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orderListResponse{
		Orders:     newOrderViews(output.Orders),
		Pagination: output.Pagination,
	})
}

// GetOrder returns one order visible to the actor.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus applies a lifecycle transition to an order.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "Invalid order ID")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.AdvanceStatus(c.Request().Context(), actor, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

type paymentCallbackRequest struct {
	OrderNumber string `json:"orderNumber" validate:"required"`
	Success     bool   `json:"success"`
}

// PaymentCallback settles an asynchronously paid order. The route is called by
// the payment provider, not by a logged-in account; the provider authenticates
// with the shared callback token instead of a bearer token. An unconfigured
// token rejects every callback.
func (h *OrderHandler) PaymentCallback(c echo.Context) error {
	token := c.Request().Header.Get(callbackTokenHeader)
	if h.callbackToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.callbackToken)) != 1 {
		return response.Unauthorized(c, "Invalid callback token")
	}

	var req paymentCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment callback input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.uc.ConfirmPayment(c.Request().Context(), usecase.ConfirmPaymentInput{
		OrderNumber: req.OrderNumber,
		Success:     req.Success,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}
