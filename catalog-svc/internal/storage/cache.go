package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"quickbite/catalog-svc/internal/domain"
)

const menuCacheKey = "menu:all"

type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func (c *MenuCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool) {
	payload, err := c.Client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *MenuCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	payload, _ := json.Marshal(items)
	return c.Client.Set(ctx, menuCacheKey, payload, c.TTL).Err()
}

func (c *MenuCache) Invalidate(ctx context.Context) error {
	return c.Client.Del(ctx, menuCacheKey).Err()
}
