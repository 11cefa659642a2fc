package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bistro/order-svc/internal/async"
)

var (
	ErrPaymentFailed = errors.New("payment failed")
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

type Result struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
}

type Gateway interface {
	RequestPayment(ctx context.Context, amount decimal.Decimal) (Result, error)
}

// Stub stands in for a card processor. It waits Delay and then approves,
// unless Decline rejects the amount.
type Stub struct {
	Delay   time.Duration
	Decline func(amount decimal.Decimal) bool
}

func NewStub(delay time.Duration) *Stub {
	return &Stub{Delay: delay}
}

func (s *Stub) RequestPayment(ctx context.Context, amount decimal.Decimal) (Result, error) {
	if !amount.IsPositive() {
		return Result{}, ErrInvalidAmount
	}
	if err := async.Wait(ctx, s.Delay); err != nil {
		return Result{}, err
	}
	if s.Decline != nil && s.Decline(amount) {
		return Result{}, fmt.Errorf("%w: declined %s", ErrPaymentFailed, amount.StringFixed(2))
	}
	return Result{
		Reference: "pay_" + uuid.NewString(),
		Amount:    amount,
		PaidAt:    time.Now().UTC(),
	}, nil
}

var _ Gateway = (*Stub)(nil)
