package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"bistro/dashboard-svc/internal/domain"
	"bistro/dashboard-svc/internal/storage"
)

var (
	ErrInvalidDate   = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidPeriod = errors.New("period must be today, week or all")
)

const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodAll   = "all"

	DefaultTopLimit  = 10
	MaxTopLimit      = 50
	DefaultTrendDays = 7
	MaxTrendDays     = 90
)

var hundred = decimal.NewFromInt(100)

type AnalyticsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewAnalyticsService(store StoreInterface) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

// NewAnalyticsServiceAt pins the clock, for tests and backfills.
func NewAnalyticsServiceAt(store StoreInterface, now func() time.Time) *AnalyticsService {
	return &AnalyticsService{store: store, now: now}
}

func (s *AnalyticsService) today() string {
	return s.now().UTC().Format(storage.DateLayout)
}

func (s *AnalyticsService) Summary(ctx context.Context, date string) (*domain.Summary, error) {
	if date == "" {
		date = s.today()
	} else if _, err := time.Parse(storage.DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	c, err := s.store.Daily(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("daily counters for %s: %w", date, err)
	}

	summary := &domain.Summary{
		Date:              date,
		Orders:            c.Orders,
		Revenue:           c.Revenue(),
		AverageOrderValue: decimal.Zero,
		ItemsSold:         c.Items,
		Reservations:      c.Reservations,
		Covers:            c.Covers,
		PickupOrders:      c.Pickup,
		DeliveryOrders:    c.Delivery,
	}
	if c.Orders > 0 {
		summary.AverageOrderValue = c.Revenue().Div(decimal.NewFromInt(c.Orders)).Round(2)
	}
	return summary, nil
}

func (s *AnalyticsService) TopItems(ctx context.Context, period string, limit int) ([]domain.ItemStat, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	var dates []string
	switch period {
	case "", PeriodToday:
		dates = []string{s.today()}
	case PeriodWeek:
		end := s.now().UTC()
		for i := 0; i < 7; i++ {
			dates = append(dates, end.AddDate(0, 0, -i).Format(storage.DateLayout))
		}
	case PeriodAll:
		dates = []string{""}
	default:
		return nil, ErrInvalidPeriod
	}

	totals := make(map[string]int64)
	for _, date := range dates {
		counts, err := s.store.ItemCounts(ctx, date)
		if err != nil {
			return nil, err
		}
		for id, n := range counts {
			totals[id] += n
		}
	}

	stats := make([]domain.ItemStat, 0, len(totals))
	for id, n := range totals {
		stats = append(stats, domain.ItemStat{MenuItemID: id, Quantity: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Quantity != stats[j].Quantity {
			return stats[i].Quantity > stats[j].Quantity
		}
		return stats[i].MenuItemID < stats[j].MenuItemID
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}

	ids := make([]string, len(stats))
	for i, st := range stats {
		ids[i] = st.MenuItemID
	}
	names, err := s.store.ItemNames(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i].Name = names[stats[i].MenuItemID]
	}
	return stats, nil
}

// Trend returns one point per day ending at end, oldest first, each compared
// with the day before it.
func (s *AnalyticsService) Trend(ctx context.Context, days int, end time.Time) ([]domain.TrendPoint, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	if days > MaxTrendDays {
		days = MaxTrendDays
	}
	end = end.UTC()

	prev, err := s.store.Daily(ctx, end.AddDate(0, 0, -days).Format(storage.DateLayout))
	if err != nil {
		return nil, err
	}

	points := make([]domain.TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		c, err := s.store.Daily(ctx, end.AddDate(0, 0, -i).Format(storage.DateLayout))
		if err != nil {
			return nil, err
		}
		point := domain.TrendPoint{
			Date:    c.Date,
			Orders:  c.Orders,
			Revenue: c.Revenue(),
		}
		if prev.RevenueCents > 0 {
			change := c.Revenue().Sub(prev.Revenue()).Div(prev.Revenue()).Mul(hundred).Round(1)
			point.ChangePercent = &change
		}
		points = append(points, point)
		prev = c
	}
	return points, nil
}
