package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"cortado/internal/domain"
	"cortado/internal/dto"
	"cortado/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
}

// CheckoutService persists an order header plus its line items as one
// atomic unit. Callers must never observe a partially written order.
type CheckoutService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewCheckoutService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

func (s *CheckoutService) PlaceOrder(ctx context.Context, order domain.Order, lines []dto.CheckoutLine) (uint, error) {
	// Bloque 1: Iniciar transacción con timeout
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return 0, errors.NewPersistenceError("failed to begin checkout transaction", err)
	}
	// Ensure rollback on any exit path. MySQL ignores rollback if already committed.
	defer tx.Rollback()

	// Bloque 2: Insertar la cabecera
	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order header", zap.Error(err))
		return 0, errors.NewPersistenceError("failed to insert order", err)
	}

	// Bloque 3: Insertar los items con precio y nombre congelados
	for _, line := range lines {
		item := domain.OrderItem{
			OrderID:    orderID,
			MenuItemID: line.MenuItemID,
			ItemName:   line.ItemName,
			Quantity:   line.Quantity,
			Price:      line.Price,
		}

		if _, err := s.orderItemRepo.Insert(txCtx, tx, item); err != nil {
			s.logger.Error("failed to insert order item, rolling back",
				zap.Uint("orderId", orderID),
				zap.Uint("menuItemId", line.MenuItemID),
				zap.Error(err),
			)
			return 0, errors.NewPersistenceError("failed to insert order item", err)
		}
	}

	// Bloque 4: Commit
	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit checkout transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return 0, errors.NewPersistenceError("failed to commit checkout transaction", err)
	}

	s.logger.Info("order placed",
		zap.Uint("orderId", orderID),
		zap.Int("itemCount", len(lines)),
		zap.String("totalAmount", order.TotalAmount.String()),
	)

	return orderID, nil
}
