package service

import (
	"context"
	"errors"
	"strings"

	"quickbite/catalog-svc/internal/domain"
)

var ErrInvalidItem = errors.New("menu item is missing required fields")

type CatalogService struct {
	repo  MenuRepository
	cache MenuCache
}

func NewCatalogService(repo MenuRepository, cache MenuCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func validateItem(item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 || !domain.ValidCategory(item.Category) {
		return ErrInvalidItem
	}
	return nil
}

func (s *CatalogService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := s.repo.CreateMenuItem(item); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx)
	return nil
}

func (s *CatalogService) List(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	items, cached := s.cache.GetMenu(ctx)
	if !cached {
		var err error
		items, err = s.repo.ListMenuItems()
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetMenu(ctx, items)
	}

	filtered := []domain.MenuItem{}
	for i := range items {
		if filter.Matches(&items[i]) {
			filtered = append(filtered, items[i])
		}
	}
	return filtered, nil
}

func (s *CatalogService) Get(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(id)
}

func (s *CatalogService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := s.repo.UpdateMenuItem(item); err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx)
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id int) (int64, error) {
	affected, err := s.repo.DeleteMenuItem(id)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		_ = s.cache.Invalidate(ctx)
	}
	return affected, nil
}
