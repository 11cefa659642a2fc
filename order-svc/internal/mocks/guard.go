package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type CheckoutGuard struct {
	mock.Mock
}

func (_m *CheckoutGuard) CheckoutKey(sessionID string) string {
	ret := _m.Called(sessionID)
	return ret.String(0)
}

func (_m *CheckoutGuard) Acquire(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

func (_m *CheckoutGuard) Release(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)
	return ret.Error(0)
}

func NewCheckoutGuard(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutGuard {
	m := &CheckoutGuard{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
