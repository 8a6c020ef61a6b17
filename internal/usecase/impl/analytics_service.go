package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// topProductsLimit bounds the product ranking on the dashboard.
const topProductsLimit = 5

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// AnalyticsServiceParams holds dependencies for analyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard aggregates the sales figures for the actor's scope. Sellers see
// their own numbers; admins see the whole store.
func (srv *analyticsService) Dashboard(ctx context.Context, actor usecase.Actor) (*usecase.DashboardOutput, error) {
	if !actor.IsSeller() && !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	var sellerID *uuid.UUID
	if actor.IsSeller() {
		id := actor.AccountID
		sellerID = &id
	}

	totalOrders, err := srv.orderRepo.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	totalRevenue, err := srv.orderRepo.RevenueBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum revenue")
	}

	totalProducts, err := srv.productRepo.CountBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	topProducts, err := srv.orderRepo.TopProducts(ctx, sellerID, topProductsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	srv.log(ctx).Debug("Dashboard computed", slog.Any("sellerID", sellerID), slog.Int64("orders", totalOrders))

	return &usecase.DashboardOutput{
		TotalOrders:   totalOrders,
		TotalRevenue:  totalRevenue,
		TotalProducts: totalProducts,
		TopProducts:   topProducts,
	}, nil
}
