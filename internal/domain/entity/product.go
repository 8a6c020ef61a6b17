// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of product categories carried by the storefront.
type Category string

const (
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryFootwear    Category = "footwear"
)

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryClothing, CategoryAccessories, CategoryFootwear:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// ProductStatus represents the listing state of a product.
type ProductStatus string

const (
	// ProductStatusActive means the product is listed and purchasable.
	ProductStatusActive ProductStatus = "active"
	// ProductStatusInactive means the product is delisted but retained for order history.
	ProductStatusInactive ProductStatus = "inactive"
	// ProductStatusOutOfStock means the product has zero stock. Kept in sync with the
	// stock counter on every stock mutation.
	ProductStatusOutOfStock ProductStatus = "out-of-stock"
)

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	default:
		return false
	}
}

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// Product is a catalog item owned by a seller.
// Price is stored in whole currency units and must never be negative.
type Product struct {
	ID          uuid.UUID     // The Global Unique Identifier (GUID) for the product.
	Name        string        // Display name.
	Description string        // Free-text description.
	Price       int64         // Unit price in whole currency units, >= 0.
	Category    Category      // One of clothing, accessories, footwear.
	Stock       int           // Units available, >= 0.
	Status      ProductStatus // Listing state. out-of-stock implies Stock == 0.
	SellerID    uuid.UUID     // The account that owns and fulfils this product.
	Rating      float64       // Average review rating, 0-5.
	ReviewCount int           // Number of reviews behind the rating.
	CreatedAt   time.Time     // Timestamp of when this product was created.
	UpdatedAt   time.Time     // Timestamp of the last modification.
}

// Purchasable reports whether the product can currently be added to a cart.
func (p *Product) Purchasable() bool {
	return p.Status == ProductStatusActive && p.Stock > 0
}
