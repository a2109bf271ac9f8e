package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cortado/internal/domain"
	apperrors "cortado/internal/errors"
)

type mockOrderLister struct {
	ListFunc func(ctx context.Context, status string) ([]domain.Order, error)
}

func (m *mockOrderLister) List(ctx context.Context, status string) ([]domain.Order, error) {
	return m.ListFunc(ctx, status)
}

func TestListOrders_AllMapsToNoFilter(t *testing.T) {
	var gotStatus string
	repo := &mockOrderLister{
		ListFunc: func(ctx context.Context, status string) ([]domain.Order, error) {
			gotStatus = status
			return nil, nil
		},
	}
	uc := NewListOrdersUseCase(repo)

	resp, err := uc.ListOrders(context.Background(), "all")

	require.NoError(t, err)
	assert.Equal(t, "", gotStatus)
	assert.Empty(t, resp.Orders)
}

func TestListOrders_StatusFilter(t *testing.T) {
	repo := &mockOrderLister{
		ListFunc: func(ctx context.Context, status string) ([]domain.Order, error) {
			assert.Equal(t, "pending", status)
			return []domain.Order{
				{ID: 2, CustomerName: "Jane", Status: "pending", TotalAmount: decimal.RequireFromString("4.00"), CreatedAt: time.Now()},
			}, nil
		},
	}
	uc := NewListOrdersUseCase(repo)

	resp, err := uc.ListOrders(context.Background(), "pending")

	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, uint(2), resp.Orders[0].ID)
	assert.Equal(t, "pending", resp.Orders[0].Status)
}

func TestListOrders_InvalidStatusFilter(t *testing.T) {
	repo := &mockOrderLister{
		ListFunc: func(ctx context.Context, status string) ([]domain.Order, error) {
			t.Fatal("repo must not be called for an invalid filter")
			return nil, nil
		},
	}
	uc := NewListOrdersUseCase(repo)

	_, err := uc.ListOrders(context.Background(), "archived")

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
