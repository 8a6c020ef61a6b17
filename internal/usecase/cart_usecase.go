package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemView is a cart line joined with its current product data.
type CartItemView struct {
	Product   *entity.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal int64           `json:"lineTotal"`
}

// CartView is the customer-facing projection of a cart: lines resolved
// against the live catalog plus the running subtotal.
type CartView struct {
	Items    []CartItemView `json:"items"`
	Subtotal int64          `json:"subtotal"`
}

// CartUsecase defines the interface for cart business operations.
// All methods act on the cart owned by the acting customer.
type CartUsecase interface {
	// GetCart resolves the cart against the live catalog.
	GetCart(ctx context.Context, actor Actor) (*CartView, error)

	// AddItem adds quantity units of a product, merging with any existing line.
	AddItem(ctx context.Context, actor Actor, productID uuid.UUID, quantity int) (*CartView, error)

	// SetItemQuantity replaces the line quantity. A quantity of zero or less
	// removes the line.
	SetItemQuantity(ctx context.Context, actor Actor, productID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem deletes the line for the product. Idempotent.
	RemoveItem(ctx context.Context, actor Actor, productID uuid.UUID) (*CartView, error)

	// Clear empties the cart.
	Clear(ctx context.Context, actor Actor) error
}
