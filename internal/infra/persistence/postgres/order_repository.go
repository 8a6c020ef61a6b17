package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
// Line items and the address snapshot live in JSONB columns; analytics queries
// unnest the items with jsonb_array_elements.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order with its frozen totals and snapshots.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return errors.Wrap(err, "failed to encode order snapshots")
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order number already exists")
		}

		return storeError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM)
}

// FindByOrderNumber retrieves an order by its human-facing order number.
func (repo *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by order number")
	}

	return toOrderDomain(&orderM)
}

// UpdateStatus persists a status transition. Orders are otherwise immutable,
// so only the status and delivered timestamp columns are touched.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":       order.Status.String(),
			"delivered_at": order.DeliveredAt,
		})
	if result.Error != nil {
		return storeError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// List retrieves orders matching the query, creation time descending, along
// with the total number of matches before paging.
func (repo *orderRepository) List(ctx context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if query.Status != nil {
		tx = tx.Where("status = ?", query.Status.String())
	}
	if query.SellerID != nil {
		tx = tx.Where("seller_id = ?", *query.SellerID)
	}
	if query.CustomerID != nil {
		tx = tx.Where("customer_id = ?", *query.CustomerID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderMs []model.OrderModel
	if err := tx.Order("created_at DESC").Offset(query.Offset).Limit(query.Limit).Find(&orderMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		order, err := toOrderDomain(&orderMs[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

// ExistsWithProduct reports whether any order references the given product.
// The JSONB containment operator hits the items column directly.
func (repo *orderRepository) ExistsWithProduct(ctx context.Context, productID uuid.UUID) (bool, error) {
	probe, err := json.Marshal([]map[string]string{{"productId": productID.String()}})
	if err != nil {
		return false, errors.Wrap(err, "failed to encode product probe")
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("items @> ?", string(probe)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check orders for product")
	}

	return count > 0, nil
}

// CountBySeller returns the number of orders fulfilled by the seller.
// A nil sellerID counts all orders.
func (repo *orderRepository) CountBySeller(ctx context.Context, sellerID *uuid.UUID) (int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if sellerID != nil {
		tx = tx.Where("seller_id = ?", *sellerID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// RevenueBySeller sums the totals of the seller's non-cancelled orders.
func (repo *orderRepository) RevenueBySeller(ctx context.Context, sellerID *uuid.UUID) (int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.OrderModel{}).
		Where("status <> ?", entity.OrderStatusCancelled.String())
	if sellerID != nil {
		tx = tx.Where("seller_id = ?", *sellerID)
	}

	var revenue int64
	if err := tx.Select("COALESCE(SUM(total), 0)").Scan(&revenue).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum order revenue")
	}

	return revenue, nil
}

// TopProducts returns the best-selling products by units sold across
// non-cancelled orders, highest first. Items are unnested from JSONB so the
// aggregate runs entirely in PostgreSQL.
func (repo *orderRepository) TopProducts(ctx context.Context, sellerID *uuid.UUID, limit int) ([]repository.ProductSales, error) {
	type salesRow struct {
		ProductID uuid.UUID
		Name      string
		TotalSold int
	}

	sql := `
		SELECT (item->>'productId')::uuid AS product_id,
		       item->>'name' AS name,
		       SUM((item->>'quantity')::int) AS total_sold
		FROM orders, jsonb_array_elements(items) AS item
		WHERE status <> ?`
	args := []any{entity.OrderStatusCancelled.String()}

	if sellerID != nil {
		sql += ` AND seller_id = ?`
		args = append(args, *sellerID)
	}

	sql += `
		GROUP BY product_id, name
		ORDER BY total_sold DESC
		LIMIT ?`
	args = append(args, limit)

	var rows []salesRow
	if err := repo.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top products")
	}

	sales := make([]repository.ProductSales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, repository.ProductSales{
			ProductID: row.ProductID,
			Name:      row.Name,
			TotalSold: row.TotalSold,
		})
	}

	return sales, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity,
// decoding the JSONB snapshots.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.OrderItem
	if err := json.Unmarshal(data.Items, &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode order items")
	}

	var address entity.OrderAddress
	if err := json.Unmarshal(data.Address, &address); err != nil {
		return nil, errors.Wrap(err, "failed to decode order address")
	}

	return &entity.Order{
		ID:                data.ID,
		OrderNumber:       data.OrderNumber,
		Items:             items,
		Address:           address,
		Delivery:          entity.DeliveryMethod(data.DeliveryMethod),
		Payment:           entity.PaymentMethod(data.PaymentMethod),
		Subtotal:          data.Subtotal,
		Shipping:          data.Shipping,
		Tax:               data.Tax,
		Discount:          data.Discount,
		Total:             data.Total,
		Status:            entity.OrderStatus(data.Status),
		SellerID:          data.SellerID,
		CustomerID:        data.CustomerID,
		CustomerName:      data.CustomerName,
		CustomerEmail:     data.CustomerEmail,
		CreatedAt:         data.CreatedAt,
		EstimatedDelivery: data.EstimatedDelivery,
		DeliveredAt:       data.DeliveredAt,
	}, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel,
// encoding the JSONB snapshots.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	if data == nil {
		return nil, nil
	}

	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, err
	}

	address, err := json.Marshal(data.Address)
	if err != nil {
		return nil, err
	}

	return &model.OrderModel{
		ID:                data.ID,
		OrderNumber:       data.OrderNumber,
		Items:             items,
		Address:           address,
		DeliveryMethod:    data.Delivery.String(),
		PaymentMethod:     data.Payment.String(),
		Subtotal:          data.Subtotal,
		Shipping:          data.Shipping,
		Tax:               data.Tax,
		Discount:          data.Discount,
		Total:             data.Total,
		Status:            data.Status.String(),
		SellerID:          data.SellerID,
		CustomerID:        data.CustomerID,
		CustomerName:      data.CustomerName,
		CustomerEmail:     data.CustomerEmail,
		CreatedAt:         data.CreatedAt,
		EstimatedDelivery: data.EstimatedDelivery,
		DeliveredAt:       data.DeliveredAt,
	}, nil
}
