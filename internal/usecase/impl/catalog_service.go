package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	pagination  *config.PaginationConfig
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	var pagination *config.PaginationConfig
	if params.Config != nil {
		pagination = params.Config.Pagination
	}

	return &catalogService{
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		pagination:  pagination,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts retrieves one catalog page, newest first.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	if input.Category != nil && !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
	}

	page, limit, offset := pageWindow(srv.pagination, input.Page, input.Limit)

	products, total, err := srv.productRepo.List(ctx, repository.ListProductsQuery{
		SellerID: input.SellerID,
		Category: input.Category,
		Search:   input.Search,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ListProductsOutput{
		Products:   products,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// GetProduct retrieves a single product.
func (srv *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct lists a new product owned by the acting seller.
func (srv *catalogService) CreateProduct(ctx context.Context, actor usecase.Actor, input usecase.CreateProductInput) (*entity.Product, error) {
	if !actor.IsSeller() && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	if err := validateProductFields(input.Name, input.Price, input.Category, input.Stock); err != nil {
		return nil, err
	}

	status := entity.ProductStatusActive
	if input.Stock == 0 {
		status = entity.ProductStatusOutOfStock
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		Status:      status,
		SellerID:    actor.AccountID,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("sellerID", actor.AccountID))

	return product, nil
}

// UpdateProduct applies the provided field changes to a product owned by the
// actor. The stock counter and the out-of-stock status move together.
func (srv *catalogService) UpdateProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown category")
		}
		product.Category = *input.Category
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product status")
		}
		product.Status = *input.Status
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
		}
		product.Stock = *input.Stock
	}

	// A zero stock always reads out-of-stock; restocking reactivates the
	// product unless the seller delisted it explicitly.
	if product.Stock == 0 {
		product.Status = entity.ProductStatusOutOfStock
	} else if product.Status == entity.ProductStatusOutOfStock {
		product.Status = entity.ProductStatusActive
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes a product owned by the actor. Products referenced by
// orders are delisted instead of removed so order history keeps resolving.
func (srv *catalogService) DeleteProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	product, err := srv.ownedProduct(ctx, actor, id)
	if err != nil {
		return err
	}

	referenced, err := srv.orderRepo.ExistsWithProduct(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check product references")
	}

	if referenced {
		product.Status = entity.ProductStatusInactive
		if err := srv.productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to delist product")
		}

		srv.log(ctx).Info("Product delisted", slog.Any("productID", id))

		return nil
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

// ownedProduct loads a product and verifies the actor may modify it.
func (srv *catalogService) ownedProduct(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load product")
	}
	if !actor.IsAdmin() && product.SellerID != actor.AccountID {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}

func validateProductFields(name string, price int64, category entity.Category, stock int) error {
	if name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
	}
	if price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}
	if !category.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown category")
	}
	if stock < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
	}

	return nil
}
