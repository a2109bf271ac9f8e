package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListMenuRequest struct {
	Category      string
	AvailableOnly bool
}

type MenuResponse struct {
	Items      []MenuItemDTO `json:"items"`
	Categories []string      `json:"categories"`
}

type MenuItemDTO struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type AddMenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

type EditMenuItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}
