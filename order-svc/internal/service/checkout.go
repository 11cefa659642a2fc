package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/engine"
	"bistro/order-svc/internal/payment"
	"bistro/order-svc/internal/session"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrDuplicateCheckout = errors.New("checkout already in progress for this session")
	ErrCancelled         = errors.New("request cancelled before completion")
)

type CheckoutService struct {
	payments  PaymentGateway
	guard     CheckoutGuard
	publisher EventPublisher
	qrEncoder QRGenerator
	now       func() time.Time
}

func NewCheckoutService(payments PaymentGateway, guard CheckoutGuard, publisher EventPublisher, qr QRGenerator) *CheckoutService {
	return &CheckoutService{
		payments:  payments,
		guard:     guard,
		publisher: publisher,
		qrEncoder: qr,
		now:       time.Now,
	}
}

func (s *CheckoutService) Validate(form domain.CheckoutForm) error {
	return engine.ValidateCheckout(form)
}

// Checkout charges the session's cart. Only one checkout per session runs at
// a time. The paid lines are removed once the payment succeeds; a failed or
// abandoned payment leaves the cart intact.
func (s *CheckoutService) Checkout(ctx context.Context, sess *session.Session, form domain.CheckoutForm) (*domain.Receipt, error) {
	if err := engine.ValidateCheckout(form); err != nil {
		return nil, err
	}

	if !sess.BeginCheckout() {
		return nil, ErrDuplicateCheckout
	}
	defer sess.EndCheckout()

	var items []domain.OrderItem
	var totals domain.Totals
	sess.Do(func(e *engine.Engine) {
		if e.IsEmpty() {
			return
		}
		e.SetOrderType(form.OrderType)
		items = e.Items()
		totals = e.Totals()
	})
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if s.guard != nil {
		key := s.guard.CheckoutKey(sess.ID)
		acquired, err := s.guard.Acquire(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("checkout guard: %w", err)
		}
		if !acquired {
			return nil, ErrDuplicateCheckout
		}
		defer func() {
			if err := s.guard.Release(context.WithoutCancel(ctx), key); err != nil {
				log.Printf("[order-svc] release checkout guard %s: %v", key, err)
			}
		}()
	}

	paid, err := s.charge(ctx, totals)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Printf("[order-svc] payment abandoned for session %s", sess.ID)
			return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		if errors.Is(err, payment.ErrPaymentFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", payment.ErrPaymentFailed, err)
	}

	sess.Do(func(e *engine.Engine) {
		for _, line := range items {
			e.RemoveItem(line.ID)
		}
		if e.IsEmpty() {
			e.Clear()
		}
	})

	receipt := &domain.Receipt{
		OrderNumber: newOrderNumber(),
		OrderType:   form.OrderType,
		Customer: domain.Customer{
			Name:  form.CustomerName,
			Phone: form.CustomerPhone,
			Email: form.CustomerEmail,
		},
		Items:      items,
		Totals:     totals,
		PickupTime: form.PickupTime,
		PaymentRef: paid.Reference,
		PaidAt:     paid.PaidAt,
	}
	if form.OrderType == domain.Delivery {
		receipt.Customer.DeliveryAddress = form.DeliveryAddress
		receipt.Customer.Instructions = form.DeliveryInstructions
	}
	if receipt.PickupTime.IsZero() {
		receipt.PickupTime = s.now().UTC()
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(receipt.OrderNumber); err == nil {
			receipt.QRCode = qr
		} else {
			log.Printf("[order-svc] qr code for %s: %v", receipt.OrderNumber, err)
		}
	}

	if s.publisher != nil {
		if err := s.publisher.PublishOrder(context.WithoutCancel(ctx), orderPlacedMessage(receipt, s.now())); err != nil {
			log.Printf("[order-svc] publish order %s: %v", receipt.OrderNumber, err)
		}
	}

	log.Printf("[order-svc] order %s paid: %s %s (%d items)",
		receipt.OrderNumber, receipt.OrderType, totals.Total.StringFixed(2), totals.ItemCount)
	return receipt, nil
}

// charge skips the gateway for a zero total; there is nothing to collect.
func (s *CheckoutService) charge(ctx context.Context, totals domain.Totals) (payment.Result, error) {
	if totals.Total.IsZero() {
		return payment.Result{Amount: totals.Total, PaidAt: s.now().UTC()}, nil
	}
	return s.payments.RequestPayment(ctx, totals.Total)
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func orderPlacedMessage(r *domain.Receipt, at time.Time) domain.KafkaMessage {
	lines := make([]domain.EventLine, len(r.Items))
	for i, item := range r.Items {
		lines[i] = domain.EventLine{
			MenuItemID: item.MenuItem.ID,
			Name:       item.MenuItem.Name,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal().StringFixed(2),
		}
	}
	return domain.KafkaMessage{
		Type:        domain.EventOrderPlaced,
		OrderNumber: r.OrderNumber,
		OrderType:   r.OrderType,
		Total:       r.Totals.Total.StringFixed(2),
		Lines:       lines,
		Timestamp:   at.UTC(),
	}
}
