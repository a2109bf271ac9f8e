package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderView is the read-only tracking projection of an order. Item names
// come from the checkout-time snapshot, not the live catalog.
type OrderView struct {
	ID           uint            `json:"id"`
	CustomerName string          `json:"customerName"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    string          `json:"createdAt"`
	Items        []OrderViewItem `json:"items"`
}

type OrderViewItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderSummary struct {
	ID            uint            `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone *string         `json:"customerPhone,omitempty"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type ListOrdersResponse struct {
	Orders []OrderSummary `json:"orders"`
}

type DashboardResponse struct {
	TotalOrders     int             `json:"totalOrders"`
	PendingOrders   int             `json:"pendingOrders"`
	CompletedOrders int             `json:"completedOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	RecentOrders    []OrderSummary  `json:"recentOrders"`
}
