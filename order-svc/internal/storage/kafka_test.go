package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/order-svc/internal/domain"
)

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_Topics(t *testing.T) {
	writer := &recordingWriter{}
	pub := NewKafkaPublisher(writer, "orders", "reservations")
	ctx := context.Background()

	require.NoError(t, pub.PublishOrder(ctx, domain.KafkaMessage{
		Type:        domain.EventOrderPlaced,
		OrderNumber: "ORD-1",
		Total:       "42.68",
		Timestamp:   time.Now(),
	}))
	require.NoError(t, pub.PublishReservation(ctx, domain.KafkaMessage{
		Type:          domain.EventReservationRequested,
		ReservationID: "res-1",
		PartySize:     4,
	}))

	require.Len(t, writer.messages, 2)
	assert.Equal(t, "orders", writer.messages[0].Topic)
	assert.Equal(t, []byte("ORD-1"), writer.messages[0].Key)
	assert.Equal(t, "reservations", writer.messages[1].Topic)

	var decoded domain.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, "42.68", decoded.Total)
	assert.Equal(t, domain.EventOrderPlaced, decoded.Type)
}
