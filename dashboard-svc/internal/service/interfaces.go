package service

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"bistro/dashboard-svc/internal/domain"
	"bistro/dashboard-svc/internal/storage"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	RecordOrder(ctx context.Context, msg domain.KafkaMessage) error
	RecordReservation(ctx context.Context, msg domain.KafkaMessage) error
	Daily(ctx context.Context, date string) (domain.DailyCounters, error)
	ItemCounts(ctx context.Context, date string) (map[string]int64, error)
	ItemNames(ctx context.Context, ids []string) (map[string]string, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg domain.KafkaMessage)
}

type AnalyticsInterface interface {
	Summary(ctx context.Context, date string) (*domain.Summary, error)
	TopItems(ctx context.Context, period string, limit int) ([]domain.ItemStat, error)
	Trend(ctx context.Context, days int, end time.Time) ([]domain.TrendPoint, error)
}

var (
	_ StoreInterface     = (*storage.Store)(nil)
	_ MessageReader      = (*kafka.Reader)(nil)
	_ ConsumerInterface  = (*Consumer)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
