package service

import (
	"context"

	"quickbite/catalog-svc/internal/domain"
)

type CatalogServiceInterface interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	Get(ctx context.Context, id int) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) (int64, error)
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) error
	DeleteMenuItem(id int) (int64, error)
}

type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, bool)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
	Invalidate(ctx context.Context) error
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
