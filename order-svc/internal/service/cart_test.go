package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bistro/order-svc/internal/catalog"
	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/engine"
	"bistro/order-svc/internal/mocks"
	"bistro/order-svc/internal/service"
	"bistro/order-svc/internal/session"
)

func newCartFixture() (*service.CartService, *session.Session) {
	svc := service.NewCartService(catalog.NewStatic(catalog.DefaultMenu()))
	reg := session.NewRegistry(engine.DefaultPricing(), time.Hour)
	return svc, reg.Create(session.Identity{})
}

func TestCartService_Add(t *testing.T) {
	tests := []struct {
		name         string
		req          service.AddItemRequest
		wantUnit     string
		wantQty      int
		wantErr      error
		wantFieldErr string
	}{
		{
			name:     "plain item",
			req:      service.AddItemRequest{MenuItemID: "classic-burger", Quantity: 2},
			wantUnit: "12.99",
			wantQty:  2,
		},
		{
			name:     "selected options are priced into the unit",
			req:      service.AddItemRequest{MenuItemID: "classic-burger", Quantity: 1, Selections: map[string]string{"extras": "bacon", "doneness": "medium"}},
			wantUnit: "14.99",
			wantQty:  1,
		},
		{
			name:     "quantity is clamped",
			req:      service.AddItemRequest{MenuItemID: "fries", Quantity: 25, Selections: map[string]string{"size": "large"}},
			wantUnit: "10.49",
			wantQty:  10,
		},
		{
			name:    "unknown item",
			req:     service.AddItemRequest{MenuItemID: "caviar", Quantity: 1},
			wantErr: domain.ErrItemNotFound,
		},
		{
			name:         "unknown option",
			req:          service.AddItemRequest{MenuItemID: "fries", Quantity: 1, Selections: map[string]string{"size": "huge"}},
			wantFieldErr: "selections.size",
		},
		{
			name:         "unknown group",
			req:          service.AddItemRequest{MenuItemID: "espresso", Quantity: 1, Selections: map[string]string{"milk": "oat"}},
			wantFieldErr: "selections.milk",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, sess := newCartFixture()

			line, err := svc.Add(context.Background(), sess, testCase.req)

			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Empty(t, svc.View(sess).Items)
			case testCase.wantFieldErr != "":
				var verr engine.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, testCase.wantFieldErr, verr.Field)
				assert.Empty(t, svc.View(sess).Items)
			default:
				require.NoError(t, err)
				assert.NotEmpty(t, line.ID)
				assert.Equal(t, testCase.wantQty, line.Quantity)
				assert.Equal(t, testCase.wantUnit, line.UnitPrice().StringFixed(2))
				assert.Empty(t, line.MenuItem.Customizations)
			}
		})
	}
}

func TestCartService_ViewRemoveClear(t *testing.T) {
	svc, sess := newCartFixture()
	ctx := context.Background()

	burger, err := svc.Add(ctx, sess, service.AddItemRequest{MenuItemID: "classic-burger", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Add(ctx, sess, service.AddItemRequest{MenuItemID: "fries", Quantity: 1})
	require.NoError(t, err)

	view := svc.View(sess)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, domain.Pickup, view.OrderType)
	assert.Equal(t, "33.97", view.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, 3, view.Totals.ItemCount)

	require.NoError(t, svc.SetOrderType(sess, domain.Delivery))
	view = svc.View(sess)
	assert.Equal(t, "42.68", view.Totals.Total.StringFixed(2))

	assert.True(t, svc.Remove(sess, burger.ID))
	assert.False(t, svc.Remove(sess, burger.ID))
	assert.Len(t, svc.View(sess).Items, 1)

	svc.Clear(sess)
	view = svc.View(sess)
	assert.Empty(t, view.Items)
	assert.Equal(t, domain.Pickup, view.OrderType)
	assert.True(t, view.Totals.Total.IsZero())
}

func TestCartService_SetOrderTypeRejectsUnknown(t *testing.T) {
	svc, sess := newCartFixture()

	err := svc.SetOrderType(sess, domain.OrderType("drone"))

	var verr engine.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "order_type", verr.Field)
	assert.Equal(t, domain.Pickup, svc.View(sess).OrderType)
}

func TestCartService_CatalogError(t *testing.T) {
	provider := mocks.NewCatalogProvider(t)
	svc := service.NewCartService(provider)
	reg := session.NewRegistry(engine.DefaultPricing(), time.Hour)

	provider.On("Item", mock.Anything, "soup").Return(nil, errors.New("db down")).Once()

	_, err := svc.Add(context.Background(), reg.Create(session.Identity{}), service.AddItemRequest{MenuItemID: "soup", Quantity: 1})
	assert.EqualError(t, err, "db down")
}

func TestMenuService(t *testing.T) {
	svc := service.NewMenuService(catalog.NewStatic(catalog.DefaultMenu()))

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	item, err := svc.Item(context.Background(), "margherita")
	require.NoError(t, err)
	assert.Equal(t, "14.50", item.Price.StringFixed(2))

	_, err = svc.Item(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	groups, err := svc.Customizations(context.Background(), "classic-burger")
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	groups, err = svc.Customizations(context.Background(), "salmon")
	require.NoError(t, err)
	assert.Empty(t, groups)
}
