package domain

import "time"

// OrderEvent mirrors the payload published on the orders topic.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id"`
	CustomerID  int       `json:"customer_id,omitempty"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

type Notification struct {
	ID         int       `json:"id"`
	OrderID    int       `json:"order_id"`
	CustomerID int       `json:"customer_id,omitempty"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
