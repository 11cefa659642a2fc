package engine

import (
	"github.com/shopspring/decimal"

	"bistro/order-svc/internal/domain"
)

var (
	DefaultTaxRate     = decimal.RequireFromString("0.08")
	DefaultDeliveryFee = decimal.RequireFromString("5.99")
)

// Pricing derives checkout totals. Tax is a flat rate with no jurisdiction logic.
type Pricing struct {
	TaxRate     decimal.Decimal
	DeliveryFee decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{TaxRate: DefaultTaxRate, DeliveryFee: DefaultDeliveryFee}
}

// Tax rounds half away from zero to cents.
func (p Pricing) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(p.TaxRate).Round(2)
}

func (p Pricing) Fee(orderType domain.OrderType) decimal.Decimal {
	if orderType == domain.Delivery {
		return p.DeliveryFee
	}
	return decimal.Zero
}

func (p Pricing) Quote(subtotal decimal.Decimal, orderType domain.OrderType) domain.Totals {
	tax := p.Tax(subtotal)
	fee := p.Fee(orderType)
	return domain.Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
	}
}
