package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cortado/internal/domain"
	apperrors "cortado/internal/errors"
)

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type UpdateStatusUseCase struct {
	orderRepo StatusUpdater
	logger    *zap.Logger
}

func NewUpdateStatusUseCase(orderRepo StatusUpdater, logger *zap.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// UpdateStatus overwrites the order status. The value set is validated but
// transitions are not constrained; completed orders may move back to
// pending.
func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, orderID uint, status string) error {
	if !domain.IsValidOrderStatus(status) {
		msg := fmt.Sprintf("invalid status %q", status)
		return apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, completed, cancelled",
		})
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return err
	}

	uc.logger.Info("order status updated", zap.Uint("orderId", orderID), zap.String("status", status))
	return nil
}
