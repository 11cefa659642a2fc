package payment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStub_RequestPayment(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		decline func(decimal.Decimal) bool
		wantErr error
	}{
		{name: "approved", amount: "42.68"},
		{name: "zero amount", amount: "0", wantErr: ErrInvalidAmount},
		{name: "negative amount", amount: "-1", wantErr: ErrInvalidAmount},
		{
			name:    "declined",
			amount:  "500",
			decline: func(a decimal.Decimal) bool { return a.GreaterThan(decimal.NewFromInt(100)) },
			wantErr: ErrPaymentFailed,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			stub := &Stub{Delay: time.Millisecond, Decline: testCase.decline}
			res, err := stub.RequestPayment(context.Background(), decimal.RequireFromString(testCase.amount))

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(res.Reference, "pay_"))
			assert.Equal(t, testCase.amount, res.Amount.String())
		})
	}
}

func TestStub_RequestPaymentCancelled(t *testing.T) {
	stub := NewStub(time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := stub.RequestPayment(ctx, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
