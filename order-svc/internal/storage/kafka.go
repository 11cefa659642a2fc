package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"bistro/order-svc/internal/domain"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer            MessageWriter
	OrdersTopic       string
	ReservationsTopic string
}

func NewKafkaPublisher(writer MessageWriter, ordersTopic, reservationsTopic string) *KafkaPublisher {
	return &KafkaPublisher{
		Writer:            writer,
		OrdersTopic:       ordersTopic,
		ReservationsTopic: reservationsTopic,
	}
}

func (p *KafkaPublisher) PublishOrder(ctx context.Context, msg domain.KafkaMessage) error {
	return p.publish(ctx, p.OrdersTopic, msg.OrderNumber, msg)
}

func (p *KafkaPublisher) PublishReservation(ctx context.Context, msg domain.KafkaMessage) error {
	return p.publish(ctx, p.ReservationsTopic, msg.ReservationID, msg)
}

func (p *KafkaPublisher) publish(ctx context.Context, topic, key string, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
}
