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

type mockOrderFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*domain.Order, error)
}

func (m *mockOrderFinder) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockOrderItemLister struct {
	ListByOrderIDFunc func(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

func (m *mockOrderItemLister) ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	return m.ListByOrderIDFunc(ctx, orderID)
}

func TestGetOrderView_Success(t *testing.T) {
	createdAt := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	phone := "555-0101"

	orderRepo := &mockOrderFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{
				ID:            3,
				CustomerName:  "John Doe",
				CustomerPhone: &phone,
				Status:        domain.OrderStatusPending,
				TotalAmount:   decimal.RequireFromString("11.00"),
				CreatedAt:     createdAt,
			}, nil
		},
	}
	itemRepo := &mockOrderItemLister{
		ListByOrderIDFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			return []domain.OrderItem{
				{ID: 1, OrderID: 3, MenuItemID: 1, ItemName: "Americano", Quantity: 2, Price: decimal.RequireFromString("3.00")},
				{ID: 2, OrderID: 3, MenuItemID: 2, ItemName: "Earl Grey", Quantity: 1, Price: decimal.RequireFromString("5.00")},
			}, nil
		},
	}

	uc := NewTrackOrderUseCase(orderRepo, itemRepo)

	view, err := uc.GetOrderView(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), view.ID)
	assert.Equal(t, "John Doe", view.CustomerName)
	assert.Equal(t, "pending", view.Status)
	assert.True(t, view.TotalAmount.Equal(decimal.RequireFromString("11.00")))
	assert.Equal(t, "2025-06-15 14:30:00", view.CreatedAt)

	require.Len(t, view.Items, 2)
	assert.Equal(t, "Americano", view.Items[0].Name)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "Earl Grey", view.Items[1].Name)
	assert.Equal(t, 1, view.Items[1].Quantity)
}

func TestGetOrderView_NotFound(t *testing.T) {
	orderRepo := &mockOrderFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order with id 404 not found")
		},
	}
	itemRepo := &mockOrderItemLister{
		ListByOrderIDFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			t.Fatal("items must not be read when the order is missing")
			return nil, nil
		},
	}

	uc := NewTrackOrderUseCase(orderRepo, itemRepo)

	view, err := uc.GetOrderView(context.Background(), 404)

	assert.Nil(t, view)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

// The view reads names from the OrderItem snapshot, so it stays intact when
// the referenced menu item was deleted after checkout.
func TestGetOrderView_SurvivesMenuItemDeletion(t *testing.T) {
	orderRepo := &mockOrderFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{
				ID:           8,
				CustomerName: "Jane",
				Status:       domain.OrderStatusCompleted,
				TotalAmount:  decimal.RequireFromString("3.50"),
				CreatedAt:    time.Now(),
			}, nil
		},
	}
	itemRepo := &mockOrderItemLister{
		ListByOrderIDFunc: func(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
			// menuItemId 77 no longer exists in MenuItems.
			return []domain.OrderItem{
				{ID: 1, OrderID: 8, MenuItemID: 77, ItemName: "Chocolate Croissant", Quantity: 1, Price: decimal.RequireFromString("3.50")},
			}, nil
		},
	}

	uc := NewTrackOrderUseCase(orderRepo, itemRepo)

	view, err := uc.GetOrderView(context.Background(), 8)

	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Chocolate Croissant", view.Items[0].Name)
}
