package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput defines the data required to convert a cart into an order.
type CheckoutInput struct {
	AddressID uuid.UUID
	Delivery  entity.DeliveryMethod
	Payment   entity.PaymentMethod
}

// ListOrdersInput carries the order listing filters and paging window.
// The visible scope is derived from the actor's role: customers see their own
// orders, sellers the orders they fulfil, admins everything.
type ListOrdersInput struct {
	Status *entity.OrderStatus
	Page   int
	Limit  int
}

// ListOrdersOutput returns one page of orders plus the paging block.
type ListOrdersOutput struct {
	Orders     []*entity.Order
	Pagination Pagination
}

// ConfirmPaymentInput is the payload delivered by the payment provider
// callback for an asynchronously settled order.
type ConfirmPaymentInput struct {
	OrderNumber string
	Success     bool
}

// OrderUsecase defines the interface for order business operations.
type OrderUsecase interface {
	// Checkout prices the actor's cart and converts it into an order within a
	// single transaction: stock is decremented, the order is created with
	// frozen totals, and the cart is cleared. Any failure rolls back all of it.
	Checkout(ctx context.Context, actor Actor, input CheckoutInput) (*entity.Order, error)

	// GetOrder retrieves an order visible to the actor.
	GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves the actor's order page, newest first.
	ListOrders(ctx context.Context, actor Actor, input ListOrdersInput) (*ListOrdersOutput, error)

	// AdvanceStatus applies a lifecycle transition. Sellers and admins drive
	// fulfilment; customers may only cancel their own orders. Cancelling
	// restocks every line.
	AdvanceStatus(ctx context.Context, actor Actor, id uuid.UUID, target entity.OrderStatus) (*entity.Order, error)

	// ConfirmPayment settles an asynchronously paid order: success confirms
	// it, failure cancels it and restocks.
	ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*entity.Order, error)
}
