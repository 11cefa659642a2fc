package domain

import "time"

const (
	EventOrderPlaced          = "order_placed"
	EventReservationRequested = "reservation_requested"
)

type EventLine struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

// KafkaMessage is the envelope published for the dashboard. Amounts travel
// as decimal strings so no precision is lost on the wire.
type KafkaMessage struct {
	Type          string      `json:"type"`
	OrderNumber   string      `json:"order_number,omitempty"`
	OrderType     OrderType   `json:"order_type,omitempty"`
	Total         string      `json:"total,omitempty"`
	Lines         []EventLine `json:"lines,omitempty"`
	ReservationID string      `json:"reservation_id,omitempty"`
	PartySize     int         `json:"party_size,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}
