package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bistro/dashboard-svc/internal/domain"
	"bistro/dashboard-svc/internal/mocks"
	"bistro/dashboard-svc/internal/service"
)

func TestConsumer_Process(t *testing.T) {
	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name:         "order placed",
			inputMessage: domain.KafkaMessage{Type: domain.EventOrderPlaced, OrderNumber: "ORD-1", Total: "42.68"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, mock.AnythingOfType("domain.KafkaMessage")).Return(nil).Once()
			},
		},
		{
			name:         "order store error",
			inputMessage: domain.KafkaMessage{Type: domain.EventOrderPlaced, OrderNumber: "ORD-1", Total: "42.68"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrder", mock.Anything, mock.Anything).Return(errors.New("redis error")).Once()
			},
		},
		{
			name:         "reservation requested",
			inputMessage: domain.KafkaMessage{Type: domain.EventReservationRequested, ReservationID: "r1", PartySize: 2},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordReservation", mock.Anything, mock.AnythingOfType("domain.KafkaMessage")).Return(nil).Once()
			},
		},
		{
			name:           "unknown type is ignored",
			inputMessage:   domain.KafkaMessage{Type: "new_review"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{Store: mockStore}
			consumer.Process(context.Background(), testCase.inputMessage)
		})
	}
}

// queueReader hands out queued messages, then blocks until ctx is done.
type queueReader struct {
	messages []kafka.Message
}

func (q *queueReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(q.messages) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	m := q.messages[0]
	q.messages = q.messages[1:]
	return m, nil
}

func TestConsumer_StartDecodesAndStops(t *testing.T) {
	payload, _ := json.Marshal(domain.KafkaMessage{Type: domain.EventOrderPlaced, OrderNumber: "ORD-9", Total: "9.99"})
	reader := &queueReader{messages: []kafka.Message{
		{Topic: "orders", Value: []byte("{not json")},
		{Topic: "orders", Value: payload},
	}}

	mockStore := mocks.NewStoreInterface(t)
	recorded := make(chan struct{})
	mockStore.On("RecordOrder", mock.Anything, mock.MatchedBy(func(m domain.KafkaMessage) bool {
		return m.OrderNumber == "ORD-9"
	})).Run(func(mock.Arguments) { close(recorded) }).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, mockStore).Start(ctx)
		close(done)
	}()

	select {
	case <-recorded:
	case <-time.After(time.Second):
		t.Fatal("order was not recorded")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.Empty(t, reader.messages)
}
