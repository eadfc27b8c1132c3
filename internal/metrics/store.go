package metrics

import (
	"context"
	"database/sql"
	"time"
)

// PlanMetric records metadata for a single planning run.
type PlanMetric struct {
	HouseholdSize int
	Days          int
	Mode          string
	Budget        float64
	PlanCost      float64
	GroceryCost   float64
	DurationMS    int64
	Timestamp     time.Time
}

// Store handles persistence of planning metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric row.
func (s *Store) Record(ctx context.Context, m PlanMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO plan_metrics (household_size, days, mode, budget, plan_cost, grocery_cost, duration_ms, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		m.HouseholdSize, m.Days, m.Mode, m.Budget, m.PlanCost, m.GroceryCost, m.DurationMS, ts)
	return err
}

// DailyUsage represents planning totals for a single day.
type DailyUsage struct {
	Date       string
	Runs       int
	TotalSpend float64
}

// GetDailyUsage retrieves run counts and budget totals for the last N days.
func (s *Store) GetDailyUsage(ctx context.Context, days int) ([]DailyUsage, error) {
	since := time.Now().AddDate(0, 0, -days).Format("2006-01-02 15:04:05")
	rows, err := s.db.QueryContext(ctx,
		"SELECT DATE(timestamp) AS day, COUNT(*), SUM(grocery_cost) FROM plan_metrics WHERE timestamp >= ? GROUP BY day ORDER BY day DESC",
		since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usage []DailyUsage
	for rows.Next() {
		var u DailyUsage
		if err := rows.Scan(&u.Date, &u.Runs, &u.TotalSpend); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}
