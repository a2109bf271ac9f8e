package dto

import "github.com/shopspring/decimal"

// CheckoutLine is a resolved cart line: the referenced menu item exists and
// its name and unit price have been snapshotted.
type CheckoutLine struct {
	MenuItemID uint
	ItemName   string
	Quantity   int
	Price      decimal.Decimal
}

func (l CheckoutLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
