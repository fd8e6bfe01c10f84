package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Order status chain. Transitions may only move one step forward;
// delivered is terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

var statusChain = []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered}

func ValidStatus(status string) bool {
	for _, s := range statusChain {
		if s == status {
			return true
		}
	}
	return false
}

// NextStatus returns the single legal successor of the given status.
// ok is false for delivered and for unknown statuses.
func NextStatus(current string) (string, bool) {
	for i, s := range statusChain {
		if s == current && i < len(statusChain)-1 {
			return statusChain[i+1], true
		}
	}
	return "", false
}

func CanTransition(from, to string) bool {
	next, ok := NextStatus(from)
	return ok && next == to
}

// ActiveStatus reports whether an order is still in the kitchen pipeline
// (everything before delivered).
func ActiveStatus(status string) bool {
	return ValidStatus(status) && status != StatusDelivered
}

const (
	DeliveryFee = 2.00
	TaxRate     = 0.10
)

func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// OrderTotals is the price breakdown charged at checkout. Fixed then;
// never recomputed from live catalog prices.
type OrderTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

func OrderTotal(subtotal float64) OrderTotals {
	sub := RoundToCents(subtotal)
	tax := RoundToCents(sub * TaxRate)
	return OrderTotals{
		Subtotal:    sub,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Total:       RoundToCents(sub + DeliveryFee + tax),
	}
}

// OrderItem is the frozen snapshot of a menu item at checkout time.
type OrderItem struct {
	MenuItemID int     `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID              int         `json:"id"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	Tax             float64     `json:"tax"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	CustomerID      int         `json:"customer_id,omitempty"`
	CustomerName    string      `json:"customer_name"`
	ContactNumber   string      `json:"contact_number"`
	DeliveryAddress string      `json:"delivery_address"`
	Note            string      `json:"note,omitempty"`
}

type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

var ErrValidation = errors.New("validation failed")

// ErrStatusConflict reports that an order's status moved between reading it
// and writing the transition.
var ErrStatusConflict = errors.New("order status changed concurrently")

type CheckoutRequest struct {
	CartID          string `json:"cart_id"`
	CustomerID      int    `json:"customer_id,omitempty"`
	CustomerName    string `json:"customer_name"`
	ContactNumber   string `json:"contact_number"`
	DeliveryAddress string `json:"delivery_address"`
	Note            string `json:"note,omitempty"`
}

func (req *CheckoutRequest) Validate() error {
	if strings.TrimSpace(req.CartID) == "" {
		return fmt.Errorf("%w: cart_id is required", ErrValidation)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer_name is required", ErrValidation)
	}
	if strings.TrimSpace(req.ContactNumber) == "" {
		return fmt.Errorf("%w: contact_number is required", ErrValidation)
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return fmt.Errorf("%w: delivery_address is required", ErrValidation)
	}
	return nil
}

// Event types published on the orders topic.
const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)

type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id"`
	CustomerID  int       `json:"customer_id,omitempty"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
