package domain

import "time"

// OrderItem is a snapshot of a cart line at submission time. It carries its
// own name and price so later catalog changes do not alter stored orders.
type OrderItem struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is a persisted customer order.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email,omitempty"`
	Address      string      `json:"address"`
	Notes        string      `json:"notes,omitempty"`
	Items        []OrderItem `json:"items"`
	Total        int64       `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
}
