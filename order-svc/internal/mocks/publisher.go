package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bistro/order-svc/internal/domain"
)

type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) PublishOrder(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

func (_m *EventPublisher) PublishReservation(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(orderNumber string) ([]byte, error) {
	ret := _m.Called(orderNumber)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}
