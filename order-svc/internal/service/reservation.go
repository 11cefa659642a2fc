package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"bistro/order-svc/internal/async"
	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/engine"
)

const ReservationConfirmed = "confirmed"

// ReservationService accepts every valid request after an artificial delay.
// There is no backing store and no conflict checking.
type ReservationService struct {
	delay     time.Duration
	publisher EventPublisher
}

func NewReservationService(delay time.Duration, publisher EventPublisher) *ReservationService {
	return &ReservationService{delay: delay, publisher: publisher}
}

func (s *ReservationService) Submit(ctx context.Context, req domain.Reservation) (*domain.ReservationConfirmation, error) {
	if err := engine.ValidateReservation(req); err != nil {
		return nil, err
	}
	req.PartySize = engine.ClampPartySize(req.PartySize)

	result := make(chan *domain.ReservationConfirmation, 1)
	pending := async.After(s.delay, func() {
		result <- &domain.ReservationConfirmation{
			ID:          uuid.NewString(),
			Status:      ReservationConfirmed,
			Reservation: req,
			ConfirmedAt: time.Now().UTC(),
		}
	})

	select {
	case <-ctx.Done():
		if pending.Cancel() {
			return nil, ErrCancelled
		}
		<-pending.Done()
	case <-pending.Done():
	}

	confirmation := <-result
	if s.publisher != nil {
		msg := domain.KafkaMessage{
			Type:          domain.EventReservationRequested,
			ReservationID: confirmation.ID,
			PartySize:     req.PartySize,
			Timestamp:     confirmation.ConfirmedAt,
		}
		if err := s.publisher.PublishReservation(context.WithoutCancel(ctx), msg); err != nil {
			log.Printf("[order-svc] publish reservation %s: %v", confirmation.ID, err)
		}
	}
	return confirmation, nil
}
