package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// StoredPlan is a persisted meal plan row.
type StoredPlan struct {
	ID            int64
	HouseholdSize int
	Days          int
	Budget        float64
	Mode          Mode
	Plan          *MealPlan
	CreatedAt     time.Time
}

// PlanRepository is a database-backed repository for generated meal plans.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(d *sql.DB) *PlanRepository {
	return &PlanRepository{db: d}
}

// Save inserts a generated plan and returns its row id.
func (r *PlanRepository) Save(ctx context.Context, householdSize, days int, budget float64, mode Mode, plan *MealPlan) (int64, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal meal plan: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO meal_plans (household_size, days, budget, mode, plan_data, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		householdSize, days, budget, string(mode), string(planJSON), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to insert meal plan: %w", err)
	}
	return res.LastInsertId()
}

// ListRecent retrieves the N most recently generated plans.
func (r *PlanRepository) ListRecent(ctx context.Context, limit int) ([]StoredPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, household_size, days, budget, mode, plan_data, created_at FROM meal_plans ORDER BY created_at DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent meal plans: %w", err)
	}
	defer rows.Close()

	var plans []StoredPlan
	for rows.Next() {
		var p StoredPlan
		var mode, planJSON string
		if err := rows.Scan(&p.ID, &p.HouseholdSize, &p.Days, &p.Budget, &mode, &planJSON, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan row: %w", err)
		}
		p.Mode = Mode(mode)
		p.Plan = &MealPlan{}
		if err := json.Unmarshal([]byte(planJSON), p.Plan); err != nil {
			return nil, fmt.Errorf("failed to unmarshal meal plan %d: %w", p.ID, err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
