package service

import (
	"context"
	"encoding/json"
	"log"

	"bistro/dashboard-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("[dashboard-svc] consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[dashboard-svc] consumer stopped")
				return
			}
			log.Printf("[dashboard-svc] error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("[dashboard-svc] error unmarshaling message from %s: %v", message.Topic, err)
			continue
		}
		c.Process(ctx, msg)
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.KafkaMessage) {
	switch msg.Type {
	case domain.EventOrderPlaced:
		if err := c.Store.RecordOrder(ctx, msg); err != nil {
			log.Printf("[dashboard-svc] error recording order %s: %v", msg.OrderNumber, err)
			return
		}
		log.Printf("[dashboard-svc] recorded order %s (%s)", msg.OrderNumber, msg.Total)
	case domain.EventReservationRequested:
		if err := c.Store.RecordReservation(ctx, msg); err != nil {
			log.Printf("[dashboard-svc] error recording reservation %s: %v", msg.ReservationID, err)
			return
		}
		log.Printf("[dashboard-svc] recorded reservation %s for %d", msg.ReservationID, msg.PartySize)
	}
}
