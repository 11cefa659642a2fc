package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bistro/dashboard-svc/internal/domain"
)

type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) RecordOrder(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordReservation(ctx context.Context, msg domain.KafkaMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

func (_m *StoreInterface) Daily(ctx context.Context, date string) (domain.DailyCounters, error) {
	ret := _m.Called(ctx, date)
	return ret.Get(0).(domain.DailyCounters), ret.Error(1)
}

func (_m *StoreInterface) ItemCounts(ctx context.Context, date string) (map[string]int64, error) {
	ret := _m.Called(ctx, date)
	var r0 map[string]int64
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int64)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) ItemNames(ctx context.Context, ids []string) (map[string]string, error) {
	ret := _m.Called(ctx, ids)
	var r0 map[string]string
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]string)
	}
	return r0, ret.Error(1)
}

func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
