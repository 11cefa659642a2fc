package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced          = "order_placed"
	EventReservationRequested = "reservation_requested"
)

// KafkaMessage mirrors the envelope the order service publishes.
type KafkaMessage struct {
	Type          string      `json:"type"`
	OrderNumber   string      `json:"order_number,omitempty"`
	OrderType     string      `json:"order_type,omitempty"`
	Total         string      `json:"total,omitempty"`
	Lines         []EventLine `json:"lines,omitempty"`
	ReservationID string      `json:"reservation_id,omitempty"`
	PartySize     int         `json:"party_size,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}

type EventLine struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

// DailyCounters is the raw per-day hash kept in Redis.
type DailyCounters struct {
	Date         string
	Orders       int64
	RevenueCents int64
	Items        int64
	Reservations int64
	Covers       int64
	Pickup       int64
	Delivery     int64
}

func (c DailyCounters) Revenue() decimal.Decimal {
	return decimal.New(c.RevenueCents, -2)
}

type Summary struct {
	Date              string          `json:"date"`
	Orders            int64           `json:"orders"`
	Revenue           decimal.Decimal `json:"revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	ItemsSold         int64           `json:"items_sold"`
	Reservations      int64           `json:"reservations"`
	Covers            int64           `json:"covers"`
	PickupOrders      int64           `json:"pickup_orders"`
	DeliveryOrders    int64           `json:"delivery_orders"`
}

type ItemStat struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`
}

// TrendPoint is one day of revenue. ChangePercent is nil when the previous
// day had no revenue to compare against.
type TrendPoint struct {
	Date          string           `json:"date"`
	Orders        int64            `json:"orders"`
	Revenue       decimal.Decimal  `json:"revenue"`
	ChangePercent *decimal.Decimal `json:"change_percent,omitempty"`
}
