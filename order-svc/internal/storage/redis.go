package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"quickbite/order-svc/internal/domain"
)

// CartStore keeps active carts in Redis, one JSON blob per cart.
type CartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{Client: client, TTL: ttl}
}

func cartKey(id string) string {
	return "cart:" + id
}

func (s *CartStore) Save(ctx context.Context, cart *domain.Cart) error {
	if cart.IsEmpty() {
		return s.Delete(ctx, cart.ID)
	}
	payload, _ := json.Marshal(cart)
	return s.Client.Set(ctx, cartKey(cart.ID), payload, s.TTL).Err()
}

// Load returns an empty cart for missing keys and for snapshots that no
// longer decode, so a broken blob never blocks a customer.
func (s *CartStore) Load(ctx context.Context, id string) (*domain.Cart, error) {
	raw, err := s.Client.Get(ctx, cartKey(id)).Bytes()
	if err == redis.Nil {
		return domain.NewCart(id), nil
	}
	if err != nil {
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil || cart.ID == "" {
		return domain.NewCart(id), nil
	}
	return &cart, nil
}

func (s *CartStore) Delete(ctx context.Context, id string) error {
	return s.Client.Del(ctx, cartKey(id)).Err()
}
