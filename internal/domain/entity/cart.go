// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is a product reference plus a positive quantity within a cart.
// Lines are unique by product.
type CartLine struct {
	ProductID uuid.UUID // The referenced catalog product.
	Quantity  int       // Requested units, always > 0 for a persisted line.
	CreatedAt time.Time // Timestamp of when this line was first added.
	UpdatedAt time.Time // Timestamp of the last quantity change.
}

// Cart is the ordered sequence of lines owned by a single customer.
// Each customer owns exactly one cart; it is cleared on successful checkout.
type Cart struct {
	CustomerID uuid.UUID
	Lines      []CartLine
}

// Line returns the line for the given product, or nil if absent.
func (c *Cart) Line(productID uuid.UUID) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}

	return nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
