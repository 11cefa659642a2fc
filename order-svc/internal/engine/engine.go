package engine

import (
	"github.com/shopspring/decimal"

	"bistro/order-svc/internal/domain"
)

// Engine is the per-session order engine: one cart, the chosen order type and
// the pricing rules. Queries never mutate state.
type Engine struct {
	cart      *Cart
	pricing   Pricing
	orderType domain.OrderType
}

func New(pricing Pricing) *Engine {
	return &Engine{
		cart:      NewCart(),
		pricing:   pricing,
		orderType: domain.Pickup,
	}
}

func (e *Engine) AddItem(item domain.MenuItem, quantity int, customizations []domain.Customization, specialInstructions string) domain.OrderItem {
	return e.cart.AddItem(item, quantity, customizations, specialInstructions)
}

func (e *Engine) RemoveItem(id string) bool {
	return e.cart.RemoveItem(id)
}

// Clear empties the cart and resets the order type for the next checkout.
func (e *Engine) Clear() {
	e.cart.Clear()
	e.orderType = domain.Pickup
}

func (e *Engine) SetOrderType(t domain.OrderType) {
	e.orderType = t
}

func (e *Engine) OrderType() domain.OrderType {
	return e.orderType
}

func (e *Engine) Items() []domain.OrderItem {
	return e.cart.Items()
}

func (e *Engine) IsEmpty() bool {
	return e.cart.IsEmpty()
}

func (e *Engine) TotalItemCount() int {
	return e.cart.TotalItemCount()
}

func (e *Engine) Subtotal() decimal.Decimal {
	return e.cart.Subtotal()
}

func (e *Engine) Tax() decimal.Decimal {
	return e.pricing.Tax(e.cart.Subtotal())
}

func (e *Engine) DeliveryFee() decimal.Decimal {
	return e.pricing.Fee(e.orderType)
}

func (e *Engine) Total() decimal.Decimal {
	return e.Totals().Total
}

func (e *Engine) Totals() domain.Totals {
	totals := e.pricing.Quote(e.cart.Subtotal(), e.orderType)
	totals.ItemCount = e.cart.TotalItemCount()
	return totals
}
