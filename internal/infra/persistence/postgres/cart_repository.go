package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByCustomer retrieves the customer's cart. A customer with no lines gets
// an empty cart, not an error.
func (repo *cartRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	var lineMs []model.CartLineModel
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&lineMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart lines")
	}

	lines := make([]entity.CartLine, 0, len(lineMs))
	for _, lineM := range lineMs {
		lines = append(lines, entity.CartLine{
			ProductID: lineM.ProductID,
			Quantity:  lineM.Quantity,
			CreatedAt: lineM.CreatedAt,
			UpdatedAt: lineM.UpdatedAt,
		})
	}

	return &entity.Cart{
		CustomerID: customerID,
		Lines:      lines,
	}, nil
}

// SaveLine inserts or replaces the line for the given product. The upsert
// keys on (customer_id, product_id) so a line stays unique per product.
func (repo *cartRepository) SaveLine(ctx context.Context, customerID uuid.UUID, line *entity.CartLine) error {
	lineM := model.CartLineModel{
		CustomerID: customerID,
		ProductID:  line.ProductID,
		Quantity:   line.Quantity,
	}

	if err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
	}).Create(&lineM).Error; err != nil {
		return storeError(err, "failed to save cart line")
	}

	return nil
}

// RemoveLine deletes the line for the given product. Removing an absent line
// is a no-op.
func (repo *cartRepository) RemoveLine(ctx context.Context, customerID uuid.UUID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return storeError(err, "failed to remove cart line")
	}

	return nil
}

// Clear empties the customer's cart. Invoked inside the checkout transaction.
func (repo *cartRepository) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return storeError(err, "failed to clear cart")
	}

	return nil
}
