package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
