package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// SQLiteTripRepo implements TripRepo using a SQLite database.
type SQLiteTripRepo struct {
	db *sql.DB
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(db *sql.DB) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: db}
}

const dateLayout = "2006-01-02"

func (r *SQLiteTripRepo) Save(ctx context.Context, plan *domain.TripPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshaling trip plan: %w", err)
	}

	query := `INSERT INTO trips (id, destination, start_date, end_date, duration_days, travelers, budget, total_cost, budget_status, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		plan.ID,
		plan.Destination,
		plan.StartDate.Format(dateLayout),
		plan.EndDate.Format(dateLayout),
		plan.DurationDays,
		plan.Travelers,
		plan.Budget,
		plan.CostBreakdown.TotalCost,
		string(plan.BudgetCompliance.Status),
		string(planJSON),
		plan.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.TripPlan, error) {
	var planJSON string
	err := r.db.QueryRowContext(ctx, `SELECT plan_json FROM trips WHERE id = ?`, id).Scan(&planJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trip: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading trip: %w", err)
	}

	var plan domain.TripPlan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("unmarshaling trip plan: %w", err)
	}
	return &plan, nil
}

func (r *SQLiteTripRepo) List(ctx context.Context, destination string, limit int) ([]TripSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, destination, start_date, end_date, duration_days, travelers, budget, total_cost, budget_status, created_at
		FROM trips`
	args := []interface{}{}
	if destination != "" {
		query += ` WHERE destination = ?`
		args = append(args, destination)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []TripSummary
	for rows.Next() {
		var t TripSummary
		var status string
		if err := rows.Scan(&t.ID, &t.Destination, &t.StartDate, &t.EndDate, &t.DurationDays,
			&t.Travelers, &t.Budget, &t.TotalCost, &status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning trip row: %w", err)
		}
		t.BudgetStatus = domain.BudgetStatus(status)
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trips: %w", err)
	}
	return trips, nil
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip: %w", ErrNotFound)
	}
	return nil
}
