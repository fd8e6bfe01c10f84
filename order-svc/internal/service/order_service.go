package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"quickbite/order-svc/internal/domain"
)

type OrderService struct {
	repo      OrderRepository
	carts     CartRepository
	publisher EventPublisher
	qr        QRGenerator
}

func NewOrderService(repo OrderRepository, carts CartRepository, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, carts: carts, publisher: publisher, qr: qr}
}

// Checkout turns a cart into an immutable order. Item names and prices are
// frozen as they were in the cart; later catalog edits never touch the order.
// The cart is cleared only after the order is committed.
func (s *OrderService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.carts.Load(ctx, req.CartID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	totals := domain.OrderTotal(cart.Totals().Subtotal)
	order := &domain.Order{
		Items:           cart.Snapshot(),
		Subtotal:        totals.Subtotal,
		DeliveryFee:     totals.DeliveryFee,
		Tax:             totals.Tax,
		TotalAmount:     totals.Total,
		Status:          domain.StatusPending,
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		ContactNumber:   req.ContactNumber,
		DeliveryAddress: req.DeliveryAddress,
		Note:            req.Note,
	}

	if err := s.repo.CreateOrder(order); err != nil {
		return nil, err
	}

	// Best effort from here on: the order exists, failures only log.
	if png, err := s.qr.Generate(order.ID); err != nil {
		log.Printf("generate qr code for order %d: %v", order.ID, err)
	} else if err := s.repo.SaveQRCode(order.ID, png); err != nil {
		log.Printf("save qr code for order %d: %v", order.ID, err)
	}

	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderCreated,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC(),
	})

	if err := s.carts.Delete(ctx, req.CartID); err != nil {
		log.Printf("clear cart %s after checkout: %v", req.CartID, err)
	}

	return order, nil
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("publish %s event for order %d: %v", event.Type, event.OrderID, err)
	}
}

func (s *OrderService) GetOrder(id int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(status string) ([]domain.Order, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, ErrUnknownStatus
	}
	return s.repo.ListOrders(status)
}

func (s *OrderService) ListCustomerOrders(customerID int) ([]domain.Order, error) {
	return s.repo.ListOrdersByCustomer(customerID)
}

func (s *OrderService) GetStatus(id int) (string, error) {
	status, err := s.repo.GetOrderStatus(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrOrderNotFound
		}
		return "", err
	}
	return status, nil
}

// UpdateStatus enforces the forward-only chain: only the single legal
// successor of the current status is accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, status, changedBy string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrUnknownStatus
	}

	current, err := s.GetStatus(id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(current, status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateOrderStatus(id, current, status, changedBy); err != nil {
		// A concurrent transition won the race; this request is now out of
		// sequence.
		if errors.Is(err, domain.ErrStatusConflict) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventStatusChanged,
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC(),
	})

	return order, nil
}

func (s *OrderService) GetStatusHistory(id int) ([]domain.StatusHistoryEntry, error) {
	if _, err := s.GetStatus(id); err != nil {
		return nil, err
	}
	return s.repo.GetStatusHistory(id)
}

// GetQRCode returns the stored PNG, regenerating it when missing.
func (s *OrderService) GetQRCode(id int) ([]byte, error) {
	png, err := s.repo.GetQRCode(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if len(png) > 0 {
		return png, nil
	}

	png, err = s.qr.Generate(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveQRCode(id, png); err != nil {
		log.Printf("cache qr code for order %d: %v", id, err)
	}
	return png, nil
}
