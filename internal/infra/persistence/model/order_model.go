package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. Line items and the shipping address
// are frozen snapshots stored as JSONB; totals are bigint whole currency
// units computed once at checkout. Orders are never deleted.
type OrderModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderNumber       string         `gorm:"type:varchar(30);unique;not null"`
	Items             datatypes.JSON `gorm:"type:jsonb;not null"`
	Address           datatypes.JSON `gorm:"type:jsonb;not null"`
	DeliveryMethod    string         `gorm:"type:varchar(20);not null"`
	PaymentMethod     string         `gorm:"type:varchar(20);not null"`
	Subtotal          int64          `gorm:"type:bigint;not null"`
	Shipping          int64          `gorm:"type:bigint;not null"`
	Tax               int64          `gorm:"type:bigint;not null"`
	Discount          int64          `gorm:"type:bigint;not null"`
	Total             int64          `gorm:"type:bigint;not null;check:total >= 0"`
	Status            string         `gorm:"type:varchar(20);not null;index"`
	SellerID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_orders_on_seller"`
	CustomerID        uuid.UUID      `gorm:"type:uuid;not null;index:idx_orders_on_customer"`
	CustomerName      string         `gorm:"type:varchar(100);not null"`
	CustomerEmail     string         `gorm:"type:varchar(255);not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
