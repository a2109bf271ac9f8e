package dto

type PlaceOrderRequest struct {
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	Items         []CartLine `json:"items"`
}

// CartLine is one entry of the submitted cart. Lines with quantity <= 0
// are ignored at the boundary.
type CartLine struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
