package order

import (
	"database/sql"

	"go.uber.org/zap"

	"cortado/internal/config"
	"cortado/internal/menu"
	menurepo "cortado/internal/menu/repository"
	"cortado/internal/order/controller"
	orderrepo "cortado/internal/order/repository"
	"cortado/internal/order/service"
	"cortado/internal/order/usecase"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	menuSvc := menu.NewService(menurepo.NewMySQLMenuItemRepository(db))

	checkoutSvc := service.NewCheckoutService(
		db,
		orderRepo,
		orderItemRepo,
		logger,
		cfg.Order.CheckoutTxTimeout,
	)

	return controller.NewOrderController(
		usecase.NewPlaceOrderUseCase(menuSvc, checkoutSvc, logger),
		usecase.NewUpdateStatusUseCase(orderRepo, logger),
		usecase.NewTrackOrderUseCase(orderRepo, orderItemRepo),
		usecase.NewListOrdersUseCase(orderRepo),
		usecase.NewDashboardUseCase(orderRepo),
		logger,
	)
}
