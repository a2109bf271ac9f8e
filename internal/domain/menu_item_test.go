package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMenuItem_Creation(t *testing.T) {
	createdAt := time.Now()

	item := MenuItem{
		ID:          1,
		Name:        "Latte",
		Description: "Espresso with steamed milk",
		Price:       decimal.RequireFromString("4.00"),
		Category:    "Coffee",
		Available:   true,
		CreatedAt:   createdAt,
	}

	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, "Latte", item.Name)
	assert.Equal(t, "Espresso with steamed milk", item.Description)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("4.00")))
	assert.Equal(t, "Coffee", item.Category)
	assert.True(t, item.Available)
	assert.Equal(t, createdAt, item.CreatedAt)
}
