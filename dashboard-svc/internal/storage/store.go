package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"bistro/dashboard-svc/internal/domain"
)

const (
	DateLayout = "2006-01-02"

	dailyTTL     = 90 * 24 * time.Hour
	dailyItemTTL = 7 * 24 * time.Hour
	seenTTL      = 7 * 24 * time.Hour

	allTimeItemsKey = "dashboard:items:alltime"
	itemNamesKey    = "dashboard:item-names"
)

func DailyKey(date string) string {
	return "dashboard:daily:" + date
}

func DailyItemsKey(date string) string {
	return "dashboard:items:" + date
}

func seenKey(kind, id string) string {
	return fmt.Sprintf("dashboard:seen:%s:%s", kind, id)
}

// Store keeps dashboard aggregates in Redis. An order number or reservation id
// is counted once; a redelivered message after a successful write is skipped.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// recordOnce applies the counters and writes the seen marker in one
// transaction watched on the marker. EXEC does not roll back a failed command,
// so on error the marker is dropped again and a redelivery is counted.
func (s *Store) recordOnce(ctx context.Context, kind, id string, apply func(pipe redis.Pipeliner)) error {
	if id == "" {
		_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			apply(pipe)
			return nil
		})
		return err
	}

	key := seenKey(kind, id)
	err := s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		seen, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if seen > 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			apply(pipe)
			pipe.Set(ctx, key, 1, seenTTL)
			return nil
		})
		if err != nil && !errors.Is(err, redis.TxFailedErr) {
			if delErr := tx.Del(context.WithoutCancel(ctx), key).Err(); delErr != nil {
				log.Printf("[dashboard-svc] drop seen marker %s: %v", key, delErr)
			}
		}
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		// another consumer wrote the marker between WATCH and EXEC
		return nil
	}
	return err
}

func (s *Store) RecordOrder(ctx context.Context, msg domain.KafkaMessage) error {
	total, err := decimal.NewFromString(msg.Total)
	if err != nil {
		return fmt.Errorf("order %s total %q: %w", msg.OrderNumber, msg.Total, err)
	}
	date := msg.Timestamp.UTC().Format(DateLayout)
	dailyKey := DailyKey(date)
	itemsKey := DailyItemsKey(date)

	var items int64
	for _, line := range msg.Lines {
		items += int64(line.Quantity)
	}

	return s.recordOnce(ctx, "order", msg.OrderNumber, func(pipe redis.Pipeliner) {
		pipe.HIncrBy(ctx, dailyKey, "orders", 1)
		pipe.HIncrBy(ctx, dailyKey, "revenue_cents", total.Shift(2).Round(0).IntPart())
		pipe.HIncrBy(ctx, dailyKey, "items", items)
		if msg.OrderType == "delivery" {
			pipe.HIncrBy(ctx, dailyKey, "delivery", 1)
		} else {
			pipe.HIncrBy(ctx, dailyKey, "pickup", 1)
		}
		pipe.Expire(ctx, dailyKey, dailyTTL)

		for _, line := range msg.Lines {
			pipe.ZIncrBy(ctx, itemsKey, float64(line.Quantity), line.MenuItemID)
			pipe.ZIncrBy(ctx, allTimeItemsKey, float64(line.Quantity), line.MenuItemID)
			if line.Name != "" {
				pipe.HSet(ctx, itemNamesKey, line.MenuItemID, line.Name)
			}
		}
		pipe.Expire(ctx, itemsKey, dailyItemTTL)
	})
}

func (s *Store) RecordReservation(ctx context.Context, msg domain.KafkaMessage) error {
	dailyKey := DailyKey(msg.Timestamp.UTC().Format(DateLayout))
	return s.recordOnce(ctx, "reservation", msg.ReservationID, func(pipe redis.Pipeliner) {
		pipe.HIncrBy(ctx, dailyKey, "reservations", 1)
		pipe.HIncrBy(ctx, dailyKey, "covers", int64(msg.PartySize))
		pipe.Expire(ctx, dailyKey, dailyTTL)
	})
}

func (s *Store) Daily(ctx context.Context, date string) (domain.DailyCounters, error) {
	fields, err := s.rdb.HGetAll(ctx, DailyKey(date)).Result()
	if err != nil {
		return domain.DailyCounters{}, err
	}
	num := func(name string) int64 {
		n, _ := strconv.ParseInt(fields[name], 10, 64)
		return n
	}
	return domain.DailyCounters{
		Date:         date,
		Orders:       num("orders"),
		RevenueCents: num("revenue_cents"),
		Items:        num("items"),
		Reservations: num("reservations"),
		Covers:       num("covers"),
		Pickup:       num("pickup"),
		Delivery:     num("delivery"),
	}, nil
}

// ItemCounts returns quantities sold per menu item for one day, or across
// all time when date is empty.
func (s *Store) ItemCounts(ctx context.Context, date string) (map[string]int64, error) {
	key := allTimeItemsKey
	if date != "" {
		key = DailyItemsKey(date)
	}
	members, err := s.rdb.ZRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		counts[id] = int64(m.Score)
	}
	return counts, nil
}

func (s *Store) ItemNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	values, err := s.rdb.HMGet(ctx, itemNamesKey, ids...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if name, ok := v.(string); ok {
			names[ids[i]] = name
		}
	}
	return names, nil
}
