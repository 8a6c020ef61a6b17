// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryMethod is the closed set of supported delivery options.
type DeliveryMethod string

const (
	DeliveryStandard  DeliveryMethod = "standard"
	DeliveryExpress   DeliveryMethod = "express"
	DeliveryOvernight DeliveryMethod = "overnight"
)

// IsValid checks if the DeliveryMethod is a valid value.
func (d DeliveryMethod) IsValid() bool {
	switch d {
	case DeliveryStandard, DeliveryExpress, DeliveryOvernight:
		return true
	default:
		return false
	}
}

// String returns the string representation of the DeliveryMethod.
func (d DeliveryMethod) String() string {
	return string(d)
}

// PaymentMethod is the closed set of supported payment options.
// Payment itself is simulated; cash-on-delivery settles asynchronously.
type PaymentMethod string

const (
	PaymentCard           PaymentMethod = "card"
	PaymentUPI            PaymentMethod = "upi"
	PaymentNetBanking     PaymentMethod = "netbanking"
	PaymentWallet         PaymentMethod = "wallet"
	PaymentCashOnDelivery PaymentMethod = "cod"
)

// IsValid checks if the PaymentMethod is a valid value.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCard, PaymentUPI, PaymentNetBanking, PaymentWallet, PaymentCashOnDelivery:
		return true
	default:
		return false
	}
}

// Asynchronous reports whether the payment method settles outside the checkout
// request. Orders paid this way start in pending and are confirmed (or cancelled)
// by the payment callback.
func (p PaymentMethod) Asynchronous() bool {
	return p == PaymentCashOnDelivery
}

// String returns the string representation of the PaymentMethod.
func (p PaymentMethod) String() string {
	return string(p)
}

// OrderStatus represents a state in the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// orderTransitions is the single source of truth for the order state machine:
// the forward fulfilment path plus cancellation from any non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transition is permitted from this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the lifecycle permits moving to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}

	return false
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is a line item within an order. Name and UnitPrice are snapshots
// captured at order creation and are immune to later product edits.
type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unitPrice"`
	Quantity  int       `json:"quantity"`
}

// OrderAddress is the shipping address snapshot frozen at order creation.
type OrderAddress struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order is a priced, immutable record of a checkout. Totals are frozen from the
// pricing engine output; after creation the only permitted mutation is a status
// transition. Orders are never deleted.
type Order struct {
	ID                uuid.UUID      // The Global Unique Identifier (GUID) for the order.
	OrderNumber       string         // Human-facing time-based token, e.g. "BF1714032000000".
	Items             []OrderItem    // Ordered line-item snapshots.
	Address           OrderAddress   // Shipping address snapshot.
	Delivery          DeliveryMethod // Chosen delivery option.
	Payment           PaymentMethod  // Chosen payment option.
	Subtotal          int64          // Sum of unit price x quantity over all items.
	Shipping          int64          // Delivery charge for the chosen method.
	Tax               int64          // Tax on the subtotal, rounded half-up.
	Discount          int64          // Discount granted by the active policy.
	Total             int64          // Subtotal + shipping + tax - discount, never negative.
	Status            OrderStatus    // Current lifecycle state.
	SellerID          uuid.UUID      // The seller fulfilling this order.
	CustomerID        uuid.UUID      // The account that placed the order.
	CustomerName      string         // Customer name snapshot at order time.
	CustomerEmail     string         // Customer email snapshot at order time.
	CreatedAt         time.Time      // Timestamp of order creation.
	EstimatedDelivery time.Time      // CreatedAt + the lead time of the delivery method.
	DeliveredAt       *time.Time     // Set when the order transitions to delivered.
}
