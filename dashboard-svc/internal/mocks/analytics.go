package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bistro/dashboard-svc/internal/domain"
)

type AnalyticsInterface struct {
	mock.Mock
}

func (_m *AnalyticsInterface) Summary(ctx context.Context, date string) (*domain.Summary, error) {
	ret := _m.Called(ctx, date)
	var r0 *domain.Summary
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Summary)
	}
	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) TopItems(ctx context.Context, period string, limit int) ([]domain.ItemStat, error) {
	ret := _m.Called(ctx, period, limit)
	var r0 []domain.ItemStat
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.ItemStat)
	}
	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) Trend(ctx context.Context, days int, end time.Time) ([]domain.TrendPoint, error) {
	ret := _m.Called(ctx, days, end)
	var r0 []domain.TrendPoint
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.TrendPoint)
	}
	return r0, ret.Error(1)
}
