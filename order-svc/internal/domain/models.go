package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	ImageRef       string          `json:"image_ref"`
	Customizations []Customization `json:"customizations,omitempty"`
}

type MenuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

type CustomizationOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Customization is a named choice group. A group without a selection adds nothing.
type Customization struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Options        []CustomizationOption `json:"options"`
	SelectedOption *CustomizationOption  `json:"selected_option,omitempty"`
}

func (c Customization) Price() decimal.Decimal {
	if c.SelectedOption == nil {
		return decimal.Zero
	}
	return c.SelectedOption.Price
}

// Option looks up one of the group's options by id.
func (c Customization) Option(id string) (CustomizationOption, bool) {
	for _, opt := range c.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return CustomizationOption{}, false
}

type OrderItem struct {
	ID                  string          `json:"id"`
	MenuItem            MenuItem        `json:"menu_item"`
	Quantity            int             `json:"quantity"`
	Customizations      []Customization `json:"customizations"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
}

// UnitPrice is the item price plus every selected option.
func (i OrderItem) UnitPrice() decimal.Decimal {
	unit := i.MenuItem.Price
	for _, c := range i.Customizations {
		unit = unit.Add(c.Price())
	}
	return unit
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type OrderType string

const (
	Pickup   OrderType = "pickup"
	Delivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == Pickup || t == Delivery
}

type CheckoutForm struct {
	CustomerName         string    `json:"customer_name"`
	CustomerPhone        string    `json:"customer_phone"`
	CustomerEmail        string    `json:"customer_email"`
	DeliveryAddress      string    `json:"delivery_address"`
	DeliveryInstructions string    `json:"delivery_instructions,omitempty"`
	PickupTime           time.Time `json:"pickup_time"`
	OrderType            OrderType `json:"order_type"`
}

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"item_count"`
}

type Customer struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	Instructions    string `json:"delivery_instructions,omitempty"`
}

type Receipt struct {
	OrderNumber string      `json:"order_number"`
	OrderType   OrderType   `json:"order_type"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	Totals      Totals      `json:"totals"`
	PickupTime  time.Time   `json:"pickup_time"`
	PaymentRef  string      `json:"payment_ref"`
	QRCode      []byte      `json:"qr_code,omitempty"`
	PaidAt      time.Time   `json:"paid_at"`
}

type Reservation struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	PhoneNumber     string    `json:"phone_number"`
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	PartySize       int       `json:"party_size"`
	SpecialRequests string    `json:"special_requests,omitempty"`
}

type ReservationConfirmation struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	Reservation Reservation `json:"reservation"`
	ConfirmedAt time.Time   `json:"confirmed_at"`
}

type RestaurantInfo struct {
	Name    string `json:"name"`
	Hours   string `json:"hours"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
