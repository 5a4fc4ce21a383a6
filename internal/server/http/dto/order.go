package dto

import "time"

// OrderResponse is a dashboard row for a single order.
type OrderResponse struct {
	ID         string    `json:"id"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Products   string    `json:"products"`
	TotalPrice string    `json:"total_price"`
	IsPaid     bool      `json:"is_paid"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderItemResponse describes one purchased product.
type OrderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// OrderDetailResponse extends the dashboard row with line items.
type OrderDetailResponse struct {
	OrderResponse
	StoreID   string              `json:"store_id"`
	UpdatedAt time.Time           `json:"updated_at"`
	Items     []OrderItemResponse `json:"items"`
}

// ErrorResponse is returned by the admin API on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
