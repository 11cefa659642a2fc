package engine

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bistro/order-svc/internal/domain"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Cart is the ordered list of order lines for one session. It is not safe
// for concurrent use; callers serialise access through their session.
type Cart struct {
	items []domain.OrderItem
	newID func() string
}

func NewCart() *Cart {
	return &Cart{newID: uuid.NewString}
}

// ClampQuantity bounds a requested quantity to what the add-to-cart stepper allows.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// AddItem appends a new line. Re-adding the same menu item creates a second line.
func (c *Cart) AddItem(item domain.MenuItem, quantity int, customizations []domain.Customization, specialInstructions string) domain.OrderItem {
	line := domain.OrderItem{
		ID:                  c.newID(),
		MenuItem:            item,
		Quantity:            ClampQuantity(quantity),
		Customizations:      copyCustomizations(customizations),
		SpecialInstructions: specialInstructions,
	}
	c.items = append(c.items, line)
	return line
}

// RemoveItem drops the line with the given id and reports whether one was found.
func (c *Cart) RemoveItem(id string) bool {
	for i, line := range c.items {
		if line.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []domain.OrderItem {
	out := make([]domain.OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) TotalItemCount() int {
	n := 0
	for _, line := range c.items {
		n += line.Quantity
	}
	return n
}

// Subtotal sums (item price + selected options) x quantity over every line.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range c.items {
		sum = sum.Add(line.LineTotal())
	}
	return sum
}

func copyCustomizations(in []domain.Customization) []domain.Customization {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Customization, len(in))
	for i, c := range in {
		out[i] = c
		out[i].Options = append([]domain.CustomizationOption(nil), c.Options...)
		if c.SelectedOption != nil {
			selected := *c.SelectedOption
			out[i].SelectedOption = &selected
		}
	}
	return out
}
