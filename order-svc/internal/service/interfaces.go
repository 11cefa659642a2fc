package service

import (
	"context"

	"github.com/shopspring/decimal"

	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/payment"
	"bistro/order-svc/internal/session"
)

// CatalogProvider supplies the read-only menu. The order engine neither
// caches nor invalidates it.
type CatalogProvider interface {
	Categories(ctx context.Context) ([]domain.MenuCategory, error)
	Item(ctx context.Context, id string) (*domain.MenuItem, error)
}

type PaymentGateway interface {
	RequestPayment(ctx context.Context, amount decimal.Decimal) (payment.Result, error)
}

type CheckoutGuard interface {
	CheckoutKey(sessionID string) string
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishOrder(ctx context.Context, msg domain.KafkaMessage) error
	PublishReservation(ctx context.Context, msg domain.KafkaMessage) error
}

type AddItemRequest struct {
	MenuItemID          string            `json:"menu_item_id"`
	Quantity            int               `json:"quantity"`
	Selections          map[string]string `json:"selections"`
	SpecialInstructions string            `json:"special_instructions"`
}

type CartView struct {
	Items     []domain.OrderItem `json:"items"`
	OrderType domain.OrderType   `json:"order_type"`
	Totals    domain.Totals      `json:"totals"`
}

type MenuServiceInterface interface {
	Categories(ctx context.Context) ([]domain.MenuCategory, error)
	Item(ctx context.Context, id string) (*domain.MenuItem, error)
	Customizations(ctx context.Context, itemID string) ([]domain.Customization, error)
}

type CartServiceInterface interface {
	Add(ctx context.Context, sess *session.Session, req AddItemRequest) (domain.OrderItem, error)
	Remove(sess *session.Session, lineID string) bool
	Clear(sess *session.Session)
	SetOrderType(sess *session.Session, t domain.OrderType) error
	View(sess *session.Session) CartView
}

type CheckoutServiceInterface interface {
	Validate(form domain.CheckoutForm) error
	Checkout(ctx context.Context, sess *session.Session, form domain.CheckoutForm) (*domain.Receipt, error)
}

type ReservationServiceInterface interface {
	Submit(ctx context.Context, req domain.Reservation) (*domain.ReservationConfirmation, error)
}

var (
	_ MenuServiceInterface        = (*MenuService)(nil)
	_ CartServiceInterface        = (*CartService)(nil)
	_ CheckoutServiceInterface    = (*CheckoutService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
)
