package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bistro/order-svc/internal/domain"
)

// PostgresCatalog is a read-only Catalog Provider over the menu tables.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

func (r *PostgresCatalog) Categories(ctx context.Context) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name
		FROM menu_categories
		ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.MenuCategory
	index := make(map[string]int)
	for rows.Next() {
		var c domain.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		c.Items = []domain.MenuItem{}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.DB.QueryContext(ctx, `
		SELECT id, category_id, name, COALESCE(description, ''), price, COALESCE(image_ref, '')
		FROM menu_items
		ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.MenuItem
		var categoryID string
		if err := itemRows.Scan(&item.ID, &categoryID, &item.Name, &item.Description, &item.Price, &item.ImageRef); err != nil {
			return nil, err
		}
		pos, ok := index[categoryID]
		if !ok {
			continue
		}
		categories[pos].Items = append(categories[pos].Items, item)
	}
	return categories, itemRows.Err()
}

func (r *PostgresCatalog) Item(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_ref, '')
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.ImageRef)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	customizations, err := r.customizations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load customizations for %s: %w", id, err)
	}
	item.Customizations = customizations
	return &item, nil
}

func (r *PostgresCatalog) customizations(ctx context.Context, itemID string) ([]domain.Customization, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT c.id, c.name, o.id, o.name, o.price
		FROM customizations c
		JOIN customization_options o ON o.customization_id = c.id AND o.menu_item_id = c.menu_item_id
		WHERE c.menu_item_id = $1
		ORDER BY c.position, o.position`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []domain.Customization
	for rows.Next() {
		var groupID, groupName string
		var opt domain.CustomizationOption
		if err := rows.Scan(&groupID, &groupName, &opt.ID, &opt.Name, &opt.Price); err != nil {
			return nil, err
		}
		if n := len(groups); n == 0 || groups[n-1].ID != groupID {
			groups = append(groups, domain.Customization{ID: groupID, Name: groupName})
		}
		last := &groups[len(groups)-1]
		last.Options = append(last.Options, opt)
	}
	return groups, rows.Err()
}

// EnsureSchema creates the menu tables when they are missing.
func (r *PostgresCatalog) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			category_id TEXT NOT NULL REFERENCES menu_categories(id),
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			image_ref TEXT,
			position INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS customizations (
			id TEXT NOT NULL,
			menu_item_id TEXT NOT NULL REFERENCES menu_items(id),
			name TEXT NOT NULL,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (id, menu_item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS customization_options (
			id TEXT NOT NULL,
			customization_id TEXT NOT NULL,
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (price >= 0),
			position INT NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
