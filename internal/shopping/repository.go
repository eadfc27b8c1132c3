package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// GroceryList is a persisted grocery list tied to a meal plan.
type GroceryList struct {
	ID         int64      `json:"id"`
	MealPlanID int64      `json:"meal_plan_id"`
	Items      []LineItem `json:"items"`
	TotalCost  float64    `json:"total_cost"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Repository handles persistence of grocery lists.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new grocery list repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

// Save creates a new grocery list row for a meal plan.
func (r *Repository) Save(ctx context.Context, mealPlanID int64, items []LineItem) (int64, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal grocery list items: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO grocery_lists (meal_plan_id, items, total_cost, created_at) VALUES (?, ?, ?, ?)",
		mealPlanID, string(itemsJSON), Total(items), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert grocery list: %w", err)
	}
	return res.LastInsertId()
}

// GetByMealPlanID retrieves the grocery list for a meal plan, or nil when
// none was stored.
func (r *Repository) GetByMealPlanID(ctx context.Context, mealPlanID int64) (*GroceryList, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, meal_plan_id, items, total_cost, created_at FROM grocery_lists WHERE meal_plan_id = ? ORDER BY created_at DESC LIMIT 1",
		mealPlanID)

	var list GroceryList
	var itemsJSON string
	err := row.Scan(&list.ID, &list.MealPlanID, &itemsJSON, &list.TotalCost, &list.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No grocery list found
		}
		return nil, fmt.Errorf("failed to get grocery list by meal plan ID: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &list.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal grocery list items: %w", err)
	}
	return &list, nil
}
