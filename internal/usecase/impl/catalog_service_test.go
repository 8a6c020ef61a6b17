package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Config:      &config.Config{Pagination: newTestPagination()},
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func sellerActor() usecase.Actor {
	return usecase.Actor{AccountID: uuid.New(), Role: entity.RoleSeller}
}

func TestCatalogService_ListProducts_DefaultWindow(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	category := entity.CategoryFootwear

	fx.productRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.ListProductsQuery")).
		RunAndReturn(func(_ context.Context, query repository.ListProductsQuery) ([]*entity.Product, int64, error) {
			require.NotNil(t, query.Category)
			assert.Equal(t, entity.CategoryFootwear, *query.Category)
			assert.Equal(t, "boot", query.Search)
			assert.Equal(t, 0, query.Offset)
			assert.Equal(t, 10, query.Limit)

			return []*entity.Product{{Name: "Hiking Boots"}}, 1, nil
		})

	output, err := fx.service.ListProducts(ctx, usecase.ListProductsInput{
		Category: &category,
		Search:   "boot",
	})
	require.NoError(t, err)
	assert.Len(t, output.Products, 1)
	assert.Equal(t, 1, output.Pagination.Page)
	assert.Equal(t, int64(1), output.Pagination.Total)
	assert.Equal(t, 1, output.Pagination.TotalPages)
}

func TestCatalogService_ListProducts_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	category := entity.Category("gadgets")
	output, err := fx.service.ListProducts(context.Background(), usecase.ListProductsInput{Category: &category})
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := sellerActor()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			product.ID = uuid.New()

			return nil
		})

	product, err := fx.service.CreateProduct(ctx, actor, usecase.CreateProductInput{
		Name:     "Canvas Sneakers",
		Price:    1800,
		Category: entity.CategoryFootwear,
		Stock:    12,
	})
	require.NoError(t, err)
	assert.Equal(t, actor.AccountID, product.SellerID)
	assert.Equal(t, entity.ProductStatusActive, product.Status)
}

func TestCatalogService_CreateProduct_ZeroStockStartsOutOfStock(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := sellerActor()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, actor, usecase.CreateProductInput{
		Name:     "Limited Cap",
		Price:    700,
		Category: entity.CategoryAccessories,
		Stock:    0,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusOutOfStock, product.Status)
}

func TestCatalogService_CreateProduct_CustomerForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	product, err := fx.service.CreateProduct(context.Background(), customerActor(), usecase.CreateProductInput{
		Name:     "Canvas Sneakers",
		Price:    1800,
		Category: entity.CategoryFootwear,
		Stock:    12,
	})
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestCatalogService_CreateProduct_InvalidFields(t *testing.T) {
	fx := createTestCatalogService(t)

	actor := sellerActor()

	cases := []struct {
		name  string
		input usecase.CreateProductInput
	}{
		{"empty name", usecase.CreateProductInput{Name: "", Price: 100, Category: entity.CategoryClothing, Stock: 1}},
		{"negative price", usecase.CreateProductInput{Name: "Shirt", Price: -1, Category: entity.CategoryClothing, Stock: 1}},
		{"unknown category", usecase.CreateProductInput{Name: "Shirt", Price: 100, Category: entity.Category("gadgets"), Stock: 1}},
		{"negative stock", usecase.CreateProductInput{Name: "Shirt", Price: 100, Category: entity.CategoryClothing, Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product, err := fx.service.CreateProduct(context.Background(), actor, tc.input)
			assert.Error(t, err)
			assert.Nil(t, product)
			assert.Equal(t, "VALIDATION_FAILED", appErrorCode(t, err))
		})
	}
}

func TestCatalogService_UpdateProduct_RestockReactivates(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := sellerActor()
	productID := uuid.New()
	newStock := 5

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:       productID,
			Name:     "Wool Socks",
			SellerID: actor.AccountID,
			Stock:    0,
			Status:   entity.ProductStatusOutOfStock,
		}, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, actor, productID, usecase.UpdateProductInput{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, 5, product.Stock)
	assert.Equal(t, entity.ProductStatusActive, product.Status)
}

func TestCatalogService_UpdateProduct_DrainedStockReadsOutOfStock(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := sellerActor()
	productID := uuid.New()
	newStock := 0

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:       productID,
			Name:     "Wool Socks",
			SellerID: actor.AccountID,
			Stock:    8,
			Status:   entity.ProductStatusActive,
		}, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, actor, productID, usecase.UpdateProductInput{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusOutOfStock, product.Status)
}

func TestCatalogService_UpdateProduct_OtherSellerForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := sellerActor()
	productID := uuid.New()
	name := "Renamed"

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New()}, nil)

	product, err := fx.service.UpdateProduct(ctx, actor, productID, usecase.UpdateProductInput{Name: &name})
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestCatalogService_UpdateProduct_AdminMayEditAnyProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}
	productID := uuid.New()
	name := "Renamed"

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New(), Stock: 3, Status: entity.ProductStatusActive}, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, actor, productID, usecase.UpdateProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", product.Name)
}

func TestCatalogService_DeleteProduct_ReferencedProductIsDelisted(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := sellerActor()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: actor.AccountID, Status: entity.ProductStatusActive}, nil)
	fx.orderRepo.EXPECT().ExistsWithProduct(ctx, productID).Return(true, nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		RunAndReturn(func(_ context.Context, product *entity.Product) error {
			assert.Equal(t, entity.ProductStatusInactive, product.Status)

			return nil
		})

	err := fx.service.DeleteProduct(ctx, actor, productID)
	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_UnreferencedProductIsRemoved(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	actor := sellerActor()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: actor.AccountID}, nil)
	fx.orderRepo.EXPECT().ExistsWithProduct(ctx, productID).Return(false, nil)
	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)

	err := fx.service.DeleteProduct(ctx, actor, productID)
	require.NoError(t, err)
}
