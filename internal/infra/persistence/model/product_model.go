package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table. Prices are whole currency units
// stored as bigint. Rows referenced by orders are soft-deleted so order
// history keeps resolving.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"type:bigint;not null;check:price >= 0"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Stock       int       `gorm:"not null;default:0;check:stock >= 0"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_products_on_seller"`
	Rating      float64   `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
