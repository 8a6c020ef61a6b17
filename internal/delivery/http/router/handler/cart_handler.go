package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// GetCart returns the actor's cart resolved against the live catalog.
func (h *CartHandler) GetCart(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	view, err := h.uc.GetCart(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(view))
}

type addCartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// AddItem adds units of a product to the cart, merging with an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.AddItem(c.Request().Context(), actor, req.ProductID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(view))
}

type setCartItemRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// SetItemQuantity replaces the quantity of one cart line; zero removes it.
func (h *CartHandler) SetItemQuantity(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BindingError(c, "Invalid product ID")
	}

	var req setCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.SetItemQuantity(c.Request().Context(), actor, productID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(view))
}

// RemoveItem deletes one cart line. Removing an absent line is a no-op.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BindingError(c, "Invalid product ID")
	}

	view, err := h.uc.RemoveItem(c.Request().Context(), actor, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCartView(view))
}

// Clear empties the actor's cart.
func (h *CartHandler) Clear(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	if err := h.uc.Clear(c.Request().Context(), actor); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"})
}
