package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/session"
)

type CheckoutServiceInterface struct {
	mock.Mock
}

func (_m *CheckoutServiceInterface) Validate(form domain.CheckoutForm) error {
	ret := _m.Called(form)
	return ret.Error(0)
}

func (_m *CheckoutServiceInterface) Checkout(ctx context.Context, sess *session.Session, form domain.CheckoutForm) (*domain.Receipt, error) {
	ret := _m.Called(ctx, sess, form)
	var r0 *domain.Receipt
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Receipt)
	}
	return r0, ret.Error(1)
}

func NewCheckoutServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type ReservationServiceInterface struct {
	mock.Mock
}

func (_m *ReservationServiceInterface) Submit(ctx context.Context, req domain.Reservation) (*domain.ReservationConfirmation, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.ReservationConfirmation
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.ReservationConfirmation)
	}
	return r0, ret.Error(1)
}

func NewReservationServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReservationServiceInterface {
	m := &ReservationServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
