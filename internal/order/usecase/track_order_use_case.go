package usecase

import (
	"context"

	"cortado/internal/domain"
	"cortado/internal/dto"
)

type OrderFinder interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderItemLister interface {
	ListByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type TrackOrderUseCase struct {
	orderRepo     OrderFinder
	orderItemRepo OrderItemLister
}

func NewTrackOrderUseCase(orderRepo OrderFinder, orderItemRepo OrderItemLister) *TrackOrderUseCase {
	return &TrackOrderUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

// GetOrderView builds the read-only tracking projection. Item names come
// from the checkout-time snapshot, so the view is unaffected by later menu
// edits or deletions.
func (uc *TrackOrderUseCase) GetOrderView(ctx context.Context, orderID uint) (*dto.OrderView, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := uc.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	viewItems := make([]dto.OrderViewItem, 0, len(items))
	for _, item := range items {
		viewItems = append(viewItems, dto.OrderViewItem{
			Name:     item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return &dto.OrderView{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		CreatedAt:    order.CreatedAt.Format("2006-01-02 15:04:05"),
		Items:        viewItems,
	}, nil
}
