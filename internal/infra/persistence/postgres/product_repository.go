package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product to the database.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates catalog constraints")
		}

		return storeError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Update modifies an existing product record.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates catalog constraints")
		}

		return storeError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete soft-deletes a product row. The row survives so order snapshots and
// analytics keep resolving.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return storeError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List retrieves products matching the query, newest first, along with the
// total number of matches before paging.
func (repo *productRepository) List(ctx context.Context, query repository.ListProductsQuery) ([]*entity.Product, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if query.SellerID != nil {
		tx = tx.Where("seller_id = ?", *query.SellerID)
	}
	if query.Category != nil {
		tx = tx.Where("category = ?", query.Category.String())
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productMs []model.ProductModel
	if err := tx.Order("created_at DESC").Offset(query.Offset).Limit(query.Limit).Find(&productMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, total, nil
}

// DecrementStock atomically subtracts quantity from the product's stock.
// The WHERE guard and the status CASE run in one UPDATE so concurrent
// checkouts can never oversell, and a product hitting zero stock is flagged
// out-of-stock in the same statement.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock":  gorm.Expr("stock - ?", quantity),
			"status": gorm.Expr("CASE WHEN stock - ? = 0 THEN ? ELSE status END", quantity, entity.ProductStatusOutOfStock.String()),
		})
	if result.Error != nil {
		return storeError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing product from an unsatisfiable decrement.
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// IncrementStock atomically adds quantity back onto the product's stock and
// reactivates a product that was flagged out-of-stock. Used on cancellation.
func (repo *productRepository) IncrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock":  gorm.Expr("stock + ?", quantity),
			"status": gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END", entity.ProductStatusOutOfStock.String(), entity.ProductStatusActive.String()),
		})
	if result.Error != nil {
		return storeError(result.Error, "failed to increment stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// CountBySeller returns the number of products owned by the seller.
// A nil sellerID counts the whole catalog.
func (repo *productRepository) CountBySeller(ctx context.Context, sellerID *uuid.UUID) (int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if sellerID != nil {
		tx = tx.Where("seller_id = ?", *sellerID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    entity.Category(data.Category),
		Stock:       data.Stock,
		Status:      entity.ProductStatus(data.Status),
		SellerID:    data.SellerID,
		Rating:      data.Rating,
		ReviewCount: data.ReviewCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel for persistence.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category.String(),
		Stock:       data.Stock,
		Status:      data.Status.String(),
		SellerID:    data.SellerID,
		Rating:      data.Rating,
		ReviewCount: data.ReviewCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
