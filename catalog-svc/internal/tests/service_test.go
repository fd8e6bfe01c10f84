package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickbite/catalog-svc/internal/domain"
	"quickbite/catalog-svc/internal/mocks"
	"quickbite/catalog-svc/internal/service"
)

func TestCatalogService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		item          domain.MenuItem
		prepareMocks  func(repo *mocks.MenuRepository, cache *mocks.MenuCache)
		expectedError error
	}{
		{
			name: "success",
			item: domain.MenuItem{Name: "Veggie Burger", Price: 7.49, Category: domain.CategoryFood},
			prepareMocks: func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {
				repo.On("CreateMenuItem", mock.Anything).Return(nil).Once()
				cache.On("Invalidate", ctx).Return(nil).Once()
			},
		},
		{
			name:          "missing_name",
			item:          domain.MenuItem{Price: 7.49, Category: domain.CategoryFood},
			prepareMocks:  func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {},
			expectedError: service.ErrInvalidItem,
		},
		{
			name:          "non_positive_price",
			item:          domain.MenuItem{Name: "Free Burger", Price: 0, Category: domain.CategoryFood},
			prepareMocks:  func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {},
			expectedError: service.ErrInvalidItem,
		},
		{
			name:          "unknown_category",
			item:          domain.MenuItem{Name: "Mystery", Price: 3.99, Category: "dessert"},
			prepareMocks:  func(repo *mocks.MenuRepository, cache *mocks.MenuCache) {},
			expectedError: service.ErrInvalidItem,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewMenuRepository(t)
			cache := mocks.NewMenuCache(t)
			svc := service.NewCatalogService(repo, cache)

			testCase.prepareMocks(repo, cache)
			err := svc.Create(ctx, &testCase.item)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestCatalogService_List_CacheMiss(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repo, cache)

	menu := []domain.MenuItem{
		{ID: 1, Name: "Classic Burger", Price: 8.99, Category: domain.CategoryFood, Tags: []string{"burgers", "popular"}, Popular: true},
		{ID: 2, Name: "Fresh Orange Juice", Price: 4.49, Category: domain.CategoryJuice, Tags: []string{"fruit-juice"}},
	}

	cache.On("GetMenu", ctx).Return(nil, false).Once()
	repo.On("ListMenuItems").Return(menu, nil).Once()
	cache.On("SetMenu", ctx, menu).Return(nil).Once()

	items, err := svc.List(ctx, domain.MenuFilter{})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCatalogService_List_FiltersFromCache(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repo, cache)

	menu := []domain.MenuItem{
		{ID: 1, Name: "Classic Burger", Price: 8.99, Category: domain.CategoryFood, Tags: []string{"burgers"}, Popular: true},
		{ID: 2, Name: "Double Cheeseburger", Price: 11.99, Category: domain.CategoryFood, Tags: []string{"burgers", "cheese"}},
		{ID: 3, Name: "Fresh Orange Juice", Price: 4.49, Category: domain.CategoryJuice, Tags: []string{"fruit-juice"}, Popular: true},
	}

	tests := []struct {
		name        string
		filter      domain.MenuFilter
		expectedIDs []int
	}{
		{name: "all", filter: domain.MenuFilter{}, expectedIDs: []int{1, 2, 3}},
		{name: "by_category", filter: domain.MenuFilter{Category: domain.CategoryJuice}, expectedIDs: []int{3}},
		{name: "by_tag", filter: domain.MenuFilter{Tag: "cheese"}, expectedIDs: []int{2}},
		{name: "popular_only", filter: domain.MenuFilter{Popular: true}, expectedIDs: []int{1, 3}},
		{name: "category_and_popular", filter: domain.MenuFilter{Category: domain.CategoryFood, Popular: true}, expectedIDs: []int{1}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cache.On("GetMenu", ctx).Return(menu, true).Once()

			items, err := svc.List(ctx, testCase.filter)
			assert.NoError(t, err)

			ids := []int{}
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, testCase.expectedIDs, ids)
		})
	}
}

func TestCatalogService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMenuRepository(t)
	cache := mocks.NewMenuCache(t)
	svc := service.NewCatalogService(repo, cache)

	repo.On("DeleteMenuItem", 4).Return(int64(1), nil).Once()
	cache.On("Invalidate", ctx).Return(nil).Once()

	affected, err := svc.Delete(ctx, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Nothing deleted: cache stays untouched.
	repo.On("DeleteMenuItem", 99).Return(int64(0), nil).Once()
	affected, err = svc.Delete(ctx, 99)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
