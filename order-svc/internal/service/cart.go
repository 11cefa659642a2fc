package service

import (
	"context"
	"fmt"

	"bistro/order-svc/internal/domain"
	"bistro/order-svc/internal/engine"
	"bistro/order-svc/internal/session"
)

type CartService struct {
	catalog CatalogProvider
}

func NewCartService(catalog CatalogProvider) *CartService {
	return &CartService{catalog: catalog}
}

// Add resolves the chosen options against the catalog and appends a new line
// to the session's cart.
func (s *CartService) Add(ctx context.Context, sess *session.Session, req AddItemRequest) (domain.OrderItem, error) {
	item, err := s.catalog.Item(ctx, req.MenuItemID)
	if err != nil {
		return domain.OrderItem{}, err
	}

	customizations, err := resolveSelections(*item, req.Selections)
	if err != nil {
		return domain.OrderItem{}, err
	}

	menuItem := *item
	menuItem.Customizations = nil

	var line domain.OrderItem
	sess.Do(func(e *engine.Engine) {
		line = e.AddItem(menuItem, req.Quantity, customizations, req.SpecialInstructions)
	})
	return line, nil
}

func resolveSelections(item domain.MenuItem, selections map[string]string) ([]domain.Customization, error) {
	known := make(map[string]bool, len(item.Customizations))
	out := make([]domain.Customization, 0, len(item.Customizations))
	for _, group := range item.Customizations {
		known[group.ID] = true
		chosen := group
		chosen.SelectedOption = nil
		if optionID, ok := selections[group.ID]; ok && optionID != "" {
			opt, found := group.Option(optionID)
			if !found {
				return nil, engine.ValidationError{
					Field:   "selections." + group.ID,
					Message: fmt.Sprintf("unknown option %q", optionID),
				}
			}
			chosen.SelectedOption = &opt
		}
		out = append(out, chosen)
	}
	for groupID := range selections {
		if !known[groupID] {
			return nil, engine.ValidationError{
				Field:   "selections." + groupID,
				Message: "no such customization for " + item.ID,
			}
		}
	}
	return out, nil
}

func (s *CartService) Remove(sess *session.Session, lineID string) bool {
	var removed bool
	sess.Do(func(e *engine.Engine) {
		removed = e.RemoveItem(lineID)
	})
	return removed
}

func (s *CartService) Clear(sess *session.Session) {
	sess.Do(func(e *engine.Engine) {
		e.Clear()
	})
}

func (s *CartService) SetOrderType(sess *session.Session, t domain.OrderType) error {
	if !t.Valid() {
		return engine.ValidationError{Field: "order_type", Message: "order type must be pickup or delivery"}
	}
	sess.Do(func(e *engine.Engine) {
		e.SetOrderType(t)
	})
	return nil
}

func (s *CartService) View(sess *session.Session) CartView {
	var view CartView
	sess.Do(func(e *engine.Engine) {
		view = CartView{
			Items:     e.Items(),
			OrderType: e.OrderType(),
			Totals:    e.Totals(),
		}
	})
	return view
}
