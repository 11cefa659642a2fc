package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bistro/order-svc/internal/domain"
)

type CatalogProvider struct {
	mock.Mock
}

func (_m *CatalogProvider) Categories(ctx context.Context) ([]domain.MenuCategory, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuCategory
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuCategory)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogProvider) Item(ctx context.Context, id string) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.MenuItem
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.MenuItem)
	}
	return r0, ret.Error(1)
}

func NewCatalogProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogProvider {
	m := &CatalogProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
