package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a conditional stock decrement cannot
	// be satisfied by the units currently available.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ListProductsQuery carries the filters and paging window for catalog listings.
type ListProductsQuery struct {
	SellerID *uuid.UUID       // Restrict to one seller's products.
	Category *entity.Category // Restrict to one category.
	Search   string           // Case-insensitive substring match on name/description.
	Offset   int
	Limit    int
}

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update modifies an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by its ID. Callers must ensure the product is not
	// referenced by any order; referenced products are soft-deleted via Update.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves products matching the query, newest first, along with the
	// total number of matches before paging.
	List(ctx context.Context, query ListProductsQuery) ([]*entity.Product, int64, error)

	// DecrementStock atomically subtracts quantity from the product's stock,
	// guarded by stock >= quantity. It keeps the out-of-stock status invariant:
	// a product whose stock reaches zero is marked out-of-stock in the same
	// statement. Returns ErrInsufficientStock when the guard fails.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncrementStock atomically adds quantity back onto the product's stock and
	// clears the out-of-stock status. Used when an order is cancelled.
	IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// CountBySeller returns the number of products owned by the seller.
	// A nil sellerID counts the whole catalog.
	CountBySeller(ctx context.Context, sellerID *uuid.UUID) (int64, error)
}
