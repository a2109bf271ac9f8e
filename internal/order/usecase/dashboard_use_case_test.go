package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cortado/internal/domain"
)

type mockOrderStatsReader struct {
	StatsFunc      func(ctx context.Context) (*domain.OrderStats, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.Order, error)
}

func (m *mockOrderStatsReader) Stats(ctx context.Context) (*domain.OrderStats, error) {
	return m.StatsFunc(ctx)
}

func (m *mockOrderStatsReader) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	return m.ListRecentFunc(ctx, limit)
}

func TestDashboard_AggregatesStatsAndRecentOrders(t *testing.T) {
	repo := &mockOrderStatsReader{
		StatsFunc: func(ctx context.Context) (*domain.OrderStats, error) {
			return &domain.OrderStats{
				TotalOrders:     10,
				PendingOrders:   4,
				CompletedOrders: 5,
				TotalRevenue:    decimal.RequireFromString("87.25"),
			}, nil
		},
		ListRecentFunc: func(ctx context.Context, limit int) ([]domain.Order, error) {
			assert.Equal(t, 5, limit)
			return []domain.Order{
				{ID: 10, CustomerName: "Jane", Status: "pending", TotalAmount: decimal.RequireFromString("4.00"), CreatedAt: time.Now()},
				{ID: 9, CustomerName: "John", Status: "completed", TotalAmount: decimal.RequireFromString("8.50"), CreatedAt: time.Now()},
			}, nil
		},
	}

	uc := NewDashboardUseCase(repo)

	resp, err := uc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, resp.TotalOrders)
	assert.Equal(t, 4, resp.PendingOrders)
	assert.Equal(t, 5, resp.CompletedOrders)
	assert.True(t, resp.TotalRevenue.Equal(decimal.RequireFromString("87.25")))
	require.Len(t, resp.RecentOrders, 2)
	assert.Equal(t, uint(10), resp.RecentOrders[0].ID)
}
