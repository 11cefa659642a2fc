package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bistro/order-svc/internal/payment"
)

type PaymentGateway struct {
	mock.Mock
}

func (_m *PaymentGateway) RequestPayment(ctx context.Context, amount decimal.Decimal) (payment.Result, error) {
	ret := _m.Called(ctx, amount)
	return ret.Get(0).(payment.Result), ret.Error(1)
}

func NewPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
