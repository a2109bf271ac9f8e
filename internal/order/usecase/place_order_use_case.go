package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cortado/internal/domain"
	"cortado/internal/dto"
	apperrors "cortado/internal/errors"
)

// MenuItemFinder resolves cart ids against the catalog. Satisfied by the
// menu service.
type MenuItemFinder interface {
	GetItemsByIDs(ctx context.Context, ids []uint) (found []domain.MenuItem, notFoundIDs []uint, err error)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, order domain.Order, lines []dto.CheckoutLine) (uint, error)
}

type PlaceOrderUseCase struct {
	menuSvc     MenuItemFinder
	checkoutSvc CheckoutService
	logger      *zap.Logger
}

func NewPlaceOrderUseCase(menuSvc MenuItemFinder, checkoutSvc CheckoutService, logger *zap.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		menuSvc:     menuSvc,
		checkoutSvc: checkoutSvc,
		logger:      logger,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (*dto.PlaceOrderResult, error) {
	// Bloque 1: Pre-validaciones (fuera de transacción)
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, apperrors.NewValidationError("customerName is required", apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName must not be empty",
		})
	}

	cart := aggregateCart(req.Items)
	if len(cart) == 0 {
		return nil, apperrors.NewValidationError("no items selected")
	}

	// Bloque 2: Resolver el carrito contra el catálogo
	ids := make([]uint, len(cart))
	for i, line := range cart {
		ids[i] = line.MenuItemID
	}

	found, notFoundIDs, err := uc.menuSvc.GetItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(notFoundIDs) > 0 {
		parts := make([]string, len(notFoundIDs))
		for i, id := range notFoundIDs {
			parts[i] = fmt.Sprintf("%d", id)
		}
		msg := fmt.Sprintf("unknown menu item ids: %s", strings.Join(parts, ", "))
		return nil, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "items",
			Message: msg,
		})
	}

	itemsByID := make(map[uint]domain.MenuItem, len(found))
	for _, item := range found {
		itemsByID[item.ID] = item
	}

	// Bloque 3: Congelar precio y nombre, calcular el total
	lines := make([]dto.CheckoutLine, 0, len(cart))
	total := decimal.Zero
	for _, cartLine := range cart {
		item := itemsByID[cartLine.MenuItemID]
		line := dto.CheckoutLine{
			MenuItemID: item.ID,
			ItemName:   item.Name,
			Quantity:   cartLine.Quantity,
			Price:      item.Price,
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())
	}

	var phone *string
	if p := strings.TrimSpace(req.CustomerPhone); p != "" {
		phone = &p
	}

	order := domain.Order{
		CustomerName:  customerName,
		CustomerPhone: phone,
		Status:        domain.OrderStatusPending,
		TotalAmount:   total,
	}

	// Bloque 4: Persistir como unidad atómica
	orderID, err := uc.checkoutSvc.PlaceOrder(ctx, order, lines)
	if err != nil {
		return nil, err
	}

	return &dto.PlaceOrderResult{
		OrderID:     orderID,
		TotalAmount: total,
	}, nil
}

// aggregateCart drops non-positive quantities and merges duplicate ids,
// preserving first-seen order.
func aggregateCart(lines []dto.CartLine) []dto.CartLine {
	index := make(map[uint]int)
	var cart []dto.CartLine

	for _, line := range lines {
		if line.Quantity <= 0 || line.MenuItemID == 0 {
			continue
		}
		if i, ok := index[line.MenuItemID]; ok {
			cart[i].Quantity += line.Quantity
			continue
		}
		index[line.MenuItemID] = len(cart)
		cart = append(cart, line)
	}

	return cart
}
