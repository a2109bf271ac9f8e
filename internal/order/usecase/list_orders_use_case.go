package usecase

import (
	"context"
	"fmt"

	"cortado/internal/domain"
	"cortado/internal/dto"
	apperrors "cortado/internal/errors"
)

type OrderLister interface {
	List(ctx context.Context, status string) ([]domain.Order, error)
}

type ListOrdersUseCase struct {
	orderRepo OrderLister
}

func NewListOrdersUseCase(orderRepo OrderLister) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// ListOrders returns all orders newest first. status narrows the list;
// empty or "all" means no filter.
func (uc *ListOrdersUseCase) ListOrders(ctx context.Context, status string) (*dto.ListOrdersResponse, error) {
	if status == "all" {
		status = ""
	}
	if status != "" && !domain.IsValidOrderStatus(status) {
		msg := fmt.Sprintf("invalid status filter %q", status)
		return nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, completed, cancelled",
		})
	}

	orders, err := uc.orderRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, toSummary(order))
	}

	return &dto.ListOrdersResponse{Orders: summaries}, nil
}

func toSummary(order domain.Order) dto.OrderSummary {
	return dto.OrderSummary{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
		CreatedAt:     order.CreatedAt,
	}
}
