package service

import (
	"context"

	"bistro/order-svc/internal/domain"
)

type MenuService struct {
	catalog CatalogProvider
}

func NewMenuService(catalog CatalogProvider) *MenuService {
	return &MenuService{catalog: catalog}
}

func (s *MenuService) Categories(ctx context.Context) ([]domain.MenuCategory, error) {
	return s.catalog.Categories(ctx)
}

func (s *MenuService) Item(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.catalog.Item(ctx, id)
}

// Customizations lists the option groups a menu item offers.
func (s *MenuService) Customizations(ctx context.Context, itemID string) ([]domain.Customization, error) {
	item, err := s.catalog.Item(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Customizations == nil {
		return []domain.Customization{}, nil
	}
	return item.Customizations, nil
}
