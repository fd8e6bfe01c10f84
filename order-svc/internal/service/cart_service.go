package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"quickbite/order-svc/internal/domain"
)

type CartService struct {
	carts CartRepository
	menu  MenuReader
}

func NewCartService(carts CartRepository, menu MenuReader) *CartService {
	return &CartService{carts: carts, menu: menu}
}

func (s *CartService) CreateCart(ctx context.Context) (*domain.Cart, error) {
	cart := domain.NewCart(uuid.NewString())
	// Empty carts are not persisted; the id becomes live on first add.
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.carts.Load(ctx, cartID)
}

// AddItem resolves the menu item server-side so the stored price always
// comes from the catalog, never from the client.
func (s *CartService) AddItem(ctx context.Context, cartID string, menuItemID, quantity int) (*domain.Cart, error) {
	item, err := s.menu.GetMenuItem(menuItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	cart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if err := cart.Add(*item, quantity); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) UpdateItem(ctx context.Context, cartID string, menuItemID, quantity int) (*domain.Cart, error) {
	cart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.UpdateQuantity(menuItemID, quantity)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID string, menuItemID int) (*domain.Cart, error) {
	cart, err := s.carts.Load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.Remove(menuItemID)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, cartID string) error {
	return s.carts.Delete(ctx, cartID)
}
