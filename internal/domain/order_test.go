package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()
	updatedAt := time.Now()
	phone := "1234567890"

	order := Order{
		ID:            1,
		CustomerName:  "John Doe",
		CustomerPhone: &phone,
		Status:        OrderStatusPending,
		TotalAmount:   decimal.RequireFromString("11.00"),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, "John Doe", order.CustomerName)
	assert.Equal(t, &phone, order.CustomerPhone)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("11.00")))
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, updatedAt, order.UpdatedAt)
}

func TestOrder_NullablePhone(t *testing.T) {
	order := Order{
		ID:           2,
		CustomerName: "Jane Smith",
		Status:       OrderStatusCompleted,
		TotalAmount:  decimal.RequireFromString("3.50"),
	}

	assert.Nil(t, order.CustomerPhone)
}

func TestOrder_StatusConstants(t *testing.T) {
	assert.Equal(t, "pending", OrderStatusPending)
	assert.Equal(t, "completed", OrderStatusCompleted)
	assert.Equal(t, "cancelled", OrderStatusCancelled)
}

func TestIsValidOrderStatus(t *testing.T) {
	assert.True(t, IsValidOrderStatus(OrderStatusPending))
	assert.True(t, IsValidOrderStatus(OrderStatusCompleted))
	assert.True(t, IsValidOrderStatus(OrderStatusCancelled))

	assert.False(t, IsValidOrderStatus(""))
	assert.False(t, IsValidOrderStatus("PENDING"))
	assert.False(t, IsValidOrderStatus("shipped"))
}
