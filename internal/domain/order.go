package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            uint
	CustomerName  string
	CustomerPhone *string
	Status        string
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// IsValidOrderStatus reports whether s is one of the three order states.
// Transitions between valid states are unconstrained.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem snapshots name and unit price at checkout time, so the line
// survives later edits or deletion of the referenced menu item.
type OrderItem struct {
	ID         uint
	OrderID    uint
	MenuItemID uint
	ItemName   string
	Quantity   int
	Price      decimal.Decimal
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type OrderStats struct {
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
	TotalRevenue    decimal.Decimal
}
