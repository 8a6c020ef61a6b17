package usecase

import (
	"context"

	"storefront/internal/domain/repository"
)

// DashboardOutput aggregates the seller-facing sales figures. Cancelled
// orders are excluded from revenue and product rankings.
type DashboardOutput struct {
	TotalOrders   int64                     `json:"totalOrders"`
	TotalRevenue  int64                     `json:"totalRevenue"`
	TotalProducts int64                     `json:"totalProducts"`
	TopProducts   []repository.ProductSales `json:"topProducts"`
}

// AnalyticsUsecase defines the interface for sales analytics.
// Sellers see their own figures; admins see storewide totals.
type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, actor Actor) (*DashboardOutput, error)
}
