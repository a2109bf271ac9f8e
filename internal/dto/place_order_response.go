package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderResult is the use-case level outcome; the controller wraps it
// with trace metadata.
type PlaceOrderResult struct {
	OrderID     uint
	TotalAmount decimal.Decimal
}

type PlaceOrderResponse struct {
	TraceID     string          `json:"traceId"`
	OrderID     uint            `json:"orderId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Timestamp   time.Time       `json:"timestamp"`
}
