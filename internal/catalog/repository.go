package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Repository persists the food and recipe catalogs in SQLite.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a catalog repository over an existing connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Seed inserts the built-in catalogs when the tables are empty, so a fresh
// database is immediately usable.
func (r *Repository) Seed(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM food_items").Scan(&count); err != nil {
		return fmt.Errorf("failed to count food items: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range DefaultItems() {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO food_items (id, name, price, unit, category) VALUES (?, ?, ?, ?, ?)",
			item.ID, item.Name, item.Price, item.Unit, string(item.Category))
		if err != nil {
			return fmt.Errorf("failed to seed food item %q: %w", item.Name, err)
		}
	}

	for _, rec := range DefaultRecipes() {
		ingredientsJSON, err := json.Marshal(rec.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to marshal ingredients for %q: %w", rec.Name, err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO recipes (id, name, meal_type, frequency_weight, ingredients) VALUES (?, ?, ?, ?, ?)",
			rec.ID, rec.Name, string(rec.MealType), rec.FrequencyWeight, string(ingredientsJSON))
		if err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", rec.Name, err)
		}
	}

	return tx.Commit()
}

// Items loads every food item, ordered by id.
func (r *Repository) Items(ctx context.Context) ([]FoodItem, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, price, unit, category FROM food_items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query food items: %w", err)
	}
	defer rows.Close()

	var items []FoodItem
	for rows.Next() {
		var item FoodItem
		var category string
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Unit, &category); err != nil {
			return nil, fmt.Errorf("failed to scan food item: %w", err)
		}
		item.Category = Category(category)
		items = append(items, item)
	}
	return items, rows.Err()
}

// Recipes loads every recipe, ordered by id.
func (r *Repository) Recipes(ctx context.Context) ([]Recipe, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, meal_type, frequency_weight, ingredients FROM recipes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		var rec Recipe
		var mealType, ingredientsJSON string
		if err := rows.Scan(&rec.ID, &rec.Name, &mealType, &rec.FrequencyWeight, &ingredientsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		rec.MealType = MealType(mealType)
		if err := json.Unmarshal([]byte(ingredientsJSON), &rec.Ingredients); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ingredients for recipe %d: %w", rec.ID, err)
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

// UpdatePrice sets a new unit price for the named item. It reports
// sql.ErrNoRows when the item does not exist.
func (r *Repository) UpdatePrice(ctx context.Context, name string, price float64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE food_items SET price = ? WHERE name = ?", price, name)
	if err != nil {
		return fmt.Errorf("failed to update price for %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
