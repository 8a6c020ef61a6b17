package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsServiceFixtures struct {
	service     usecase.AnalyticsUsecase
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestAnalyticsService(t *testing.T) analyticsServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewAnalyticsService(AnalyticsServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return analyticsServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func TestAnalyticsService_Dashboard_SellerScope(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	actor := sellerActor()
	top := []repository.ProductSales{
		{ProductID: uuid.New(), Name: "Linen Shirt", TotalSold: 42},
		{ProductID: uuid.New(), Name: "Leather Belt", TotalSold: 17},
	}

	fx.orderRepo.EXPECT().CountBySeller(ctx, &actor.AccountID).Return(12, nil)
	fx.orderRepo.EXPECT().RevenueBySeller(ctx, &actor.AccountID).Return(87600, nil)
	fx.productRepo.EXPECT().CountBySeller(ctx, &actor.AccountID).Return(7, nil)
	fx.orderRepo.EXPECT().TopProducts(ctx, &actor.AccountID, topProductsLimit).Return(top, nil)

	output, err := fx.service.Dashboard(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(12), output.TotalOrders)
	assert.Equal(t, int64(87600), output.TotalRevenue)
	assert.Equal(t, int64(7), output.TotalProducts)
	assert.Equal(t, top, output.TopProducts)
}

func TestAnalyticsService_Dashboard_AdminSeesWholeStore(t *testing.T) {
	fx := createTestAnalyticsService(t)

	ctx := context.Background()
	actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}

	fx.orderRepo.EXPECT().CountBySeller(ctx, (*uuid.UUID)(nil)).Return(120, nil)
	fx.orderRepo.EXPECT().RevenueBySeller(ctx, (*uuid.UUID)(nil)).Return(954000, nil)
	fx.productRepo.EXPECT().CountBySeller(ctx, (*uuid.UUID)(nil)).Return(60, nil)
	fx.orderRepo.EXPECT().TopProducts(ctx, (*uuid.UUID)(nil), topProductsLimit).Return(nil, nil)

	output, err := fx.service.Dashboard(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, int64(120), output.TotalOrders)
	assert.Equal(t, int64(954000), output.TotalRevenue)
}

func TestAnalyticsService_Dashboard_CustomerForbidden(t *testing.T) {
	fx := createTestAnalyticsService(t)

	output, err := fx.service.Dashboard(context.Background(), customerActor())
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}
