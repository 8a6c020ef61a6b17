package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ListOrdersQuery carries the filters and paging window for order listings.
// Orders are always returned newest first.
type ListOrdersQuery struct {
	Status     *entity.OrderStatus // Restrict to one lifecycle state.
	SellerID   *uuid.UUID          // Restrict to orders fulfilled by this seller.
	CustomerID *uuid.UUID          // Restrict to orders placed by this customer.
	Offset     int
	Limit      int
}

// ProductSales is an analytics aggregate: units sold per product.
type ProductSales struct {
	ProductID uuid.UUID
	Name      string
	TotalSold int
}

// OrderRepository defines the interface for order persistence.
// Orders are insert-only; the only permitted mutation is a status update.
type OrderRepository interface {
	// Create persists a new order with its frozen totals and snapshots.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByOrderNumber retrieves an order by its human-facing order number.
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// UpdateStatus persists a status transition, together with the delivered
	// timestamp when the target state is delivered.
	UpdateStatus(ctx context.Context, order *entity.Order) error

	// List retrieves orders matching the query, creation time descending, along
	// with the total number of matches before paging.
	List(ctx context.Context, query ListOrdersQuery) ([]*entity.Order, int64, error)

	// ExistsWithProduct reports whether any order references the given product.
	// Used to decide between hard and soft product deletion.
	ExistsWithProduct(ctx context.Context, productID uuid.UUID) (bool, error)

	// CountBySeller returns the number of orders fulfilled by the seller.
	// A nil sellerID counts all orders.
	CountBySeller(ctx context.Context, sellerID *uuid.UUID) (int64, error)

	// RevenueBySeller sums the totals of the seller's non-cancelled orders.
	// A nil sellerID sums over all orders.
	RevenueBySeller(ctx context.Context, sellerID *uuid.UUID) (int64, error)

	// TopProducts returns the best-selling products by units sold across the
	// seller's non-cancelled orders, highest first.
	TopProducts(ctx context.Context, sellerID *uuid.UUID, limit int) ([]ProductSales, error)
}
