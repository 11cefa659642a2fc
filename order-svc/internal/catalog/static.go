package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"bistro/order-svc/internal/domain"
)

// Static serves a fixed in-memory menu. Callers get copies; the menu itself
// never changes after construction.
type Static struct {
	categories []domain.MenuCategory
}

func NewStatic(categories []domain.MenuCategory) *Static {
	return &Static{categories: categories}
}

func (s *Static) Categories(ctx context.Context) ([]domain.MenuCategory, error) {
	out := make([]domain.MenuCategory, len(s.categories))
	for i, c := range s.categories {
		out[i] = c
		out[i].Items = append([]domain.MenuItem(nil), c.Items...)
	}
	return out, nil
}

func (s *Static) Item(ctx context.Context, id string) (*domain.MenuItem, error) {
	for _, c := range s.categories {
		for _, item := range c.Items {
			if item.ID == id {
				found := item
				return &found, nil
			}
		}
	}
	return nil, domain.ErrItemNotFound
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sizeGroup(large string) domain.Customization {
	return domain.Customization{
		ID:   "size",
		Name: "Size",
		Options: []domain.CustomizationOption{
			{ID: "regular", Name: "Regular", Price: decimal.Zero},
			{ID: "large", Name: "Large", Price: price(large)},
		},
	}
}

// DefaultMenu is the demo menu shipped with the app.
func DefaultMenu() []domain.MenuCategory {
	return []domain.MenuCategory{
		{
			ID:   "starters",
			Name: "Starters",
			Items: []domain.MenuItem{
				{
					ID: "bruschetta", Name: "Bruschetta",
					Description: "Grilled bread, tomato, basil, garlic",
					Price:       price("8.49"), ImageRef: "bruschetta",
				},
				{
					ID: "calamari", Name: "Fried Calamari",
					Description: "Lemon aioli",
					Price:       price("11.99"), ImageRef: "calamari",
					Customizations: []domain.Customization{{
						ID:   "dip",
						Name: "Dip",
						Options: []domain.CustomizationOption{
							{ID: "aioli", Name: "Lemon aioli", Price: decimal.Zero},
							{ID: "marinara", Name: "Marinara", Price: decimal.Zero},
							{ID: "both", Name: "Both", Price: price("1.00")},
						},
					}},
				},
			},
		},
		{
			ID:   "mains",
			Name: "Mains",
			Items: []domain.MenuItem{
				{
					ID: "classic-burger", Name: "Classic Burger",
					Description: "Beef patty, cheddar, lettuce, tomato",
					Price:       price("12.99"), ImageRef: "burger",
					Customizations: []domain.Customization{
						{
							ID:   "doneness",
							Name: "Doneness",
							Options: []domain.CustomizationOption{
								{ID: "medium-rare", Name: "Medium rare", Price: decimal.Zero},
								{ID: "medium", Name: "Medium", Price: decimal.Zero},
								{ID: "well-done", Name: "Well done", Price: decimal.Zero},
							},
						},
						{
							ID:   "extras",
							Name: "Extras",
							Options: []domain.CustomizationOption{
								{ID: "bacon", Name: "Bacon", Price: price("2.00")},
								{ID: "avocado", Name: "Avocado", Price: price("1.50")},
							},
						},
					},
				},
				{
					ID: "margherita", Name: "Margherita Pizza",
					Description: "San Marzano tomato, mozzarella, basil",
					Price:       price("14.50"), ImageRef: "margherita",
					Customizations: []domain.Customization{sizeGroup("4.00")},
				},
				{
					ID: "salmon", Name: "Grilled Salmon",
					Description: "Seasonal vegetables, lemon butter",
					Price:       price("21.00"), ImageRef: "salmon",
				},
			},
		},
		{
			ID:   "sides",
			Name: "Sides",
			Items: []domain.MenuItem{
				{
					ID: "fries", Name: "Truffle Fries",
					Description: "Parmesan, parsley",
					Price:       price("7.99"), ImageRef: "fries",
					Customizations: []domain.Customization{sizeGroup("2.50")},
				},
			},
		},
		{
			ID:   "desserts",
			Name: "Desserts",
			Items: []domain.MenuItem{
				{
					ID: "tiramisu", Name: "Tiramisu",
					Description: "Espresso, mascarpone, cocoa",
					Price:       price("7.50"), ImageRef: "tiramisu",
				},
			},
		},
		{
			ID:   "drinks",
			Name: "Drinks",
			Items: []domain.MenuItem{
				{
					ID: "lemonade", Name: "House Lemonade",
					Price:    price("3.99"), ImageRef: "lemonade",
					Customizations: []domain.Customization{sizeGroup("1.00")},
				},
				{
					ID: "espresso", Name: "Espresso",
					Price: price("2.99"), ImageRef: "espresso",
				},
			},
		},
	}
}
