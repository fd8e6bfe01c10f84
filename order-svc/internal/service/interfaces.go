package service

import (
	"context"

	"quickbite/order-svc/internal/domain"
)

type CartServiceInterface interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID string, menuItemID, quantity int) (*domain.Cart, error)
	UpdateItem(ctx context.Context, cartID string, menuItemID, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID string, menuItemID int) (*domain.Cart, error)
	ClearCart(ctx context.Context, cartID string) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.Order, error)
	GetOrder(id int) (*domain.Order, error)
	ListOrders(status string) ([]domain.Order, error)
	ListCustomerOrders(customerID int) ([]domain.Order, error)
	GetStatus(id int) (string, error)
	UpdateStatus(ctx context.Context, id int, status, changedBy string) (*domain.Order, error)
	GetStatusHistory(id int) ([]domain.StatusHistoryEntry, error)
	GetQRCode(id int) ([]byte, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrders(status string) ([]domain.Order, error)
	ListOrdersByCustomer(customerID int) ([]domain.Order, error)
	GetOrderStatus(orderID int) (string, error)
	UpdateOrderStatus(orderID int, from, to, changedBy string) error
	GetStatusHistory(orderID int) ([]domain.StatusHistoryEntry, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type MenuReader interface {
	GetMenuItem(id int) (*domain.CartItem, error)
}

type CartRepository interface {
	Save(ctx context.Context, cart *domain.Cart) error
	Load(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ CartServiceInterface  = (*CartService)(nil)
	_ OrderServiceInterface = (*OrderService)(nil)
)
