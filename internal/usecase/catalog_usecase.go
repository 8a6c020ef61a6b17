package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ListProductsInput carries the catalog listing filters and paging window.
// Page is 1-based; zero values fall back to the configured defaults.
type ListProductsInput struct {
	Category *entity.Category
	Search   string
	SellerID *uuid.UUID
	Page     int
	Limit    int
}

// ListProductsOutput returns one page of the catalog plus the paging block.
type ListProductsOutput struct {
	Products   []*entity.Product
	Pagination Pagination
}

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	Category    entity.Category
	Stock       int
}

// UpdateProductInput carries the mutable product fields. Nil pointers leave
// the current value untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *int64
	Category    *entity.Category
	Stock       *int
	Status      *entity.ProductStatus
}

// CatalogUsecase defines the interface for catalog business operations.
// Reads are public; writes require the owning seller or an admin.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, actor Actor, input CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, actor Actor, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, actor Actor, id uuid.UUID) error
}
