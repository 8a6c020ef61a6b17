package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence.
// Each customer owns exactly one cart, addressed by account ID.
type CartRepository interface {
	// FindByCustomer retrieves the customer's cart. A customer with no lines
	// gets an empty cart, not an error.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)

	// SaveLine inserts or replaces the line for the given product.
	SaveLine(ctx context.Context, customerID uuid.UUID, line *entity.CartLine) error

	// RemoveLine deletes the line for the given product. Removing an absent
	// line is a no-op.
	RemoveLine(ctx context.Context, customerID uuid.UUID, productID uuid.UUID) error

	// Clear empties the customer's cart. Invoked after a successful checkout.
	Clear(ctx context.Context, customerID uuid.UUID) error
}
