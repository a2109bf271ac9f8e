package usecase

import (
	"context"

	"cortado/internal/domain"
	"cortado/internal/dto"
)

const recentOrdersLimit = 5

type OrderStatsReader interface {
	Stats(ctx context.Context) (*domain.OrderStats, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
}

type DashboardUseCase struct {
	orderRepo OrderStatsReader
}

func NewDashboardUseCase(orderRepo OrderStatsReader) *DashboardUseCase {
	return &DashboardUseCase{orderRepo: orderRepo}
}

func (uc *DashboardUseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.orderRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.orderRepo.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.OrderSummary, 0, len(recent))
	for _, order := range recent {
		summaries = append(summaries, toSummary(order))
	}

	return &dto.DashboardResponse{
		TotalOrders:     stats.TotalOrders,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		TotalRevenue:    stats.TotalRevenue,
		RecentOrders:    summaries,
	}, nil
}
