package repository

import (
	"context"
	"errors"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// TripSummary is the lightweight listing view of a stored trip plan.
type TripSummary struct {
	ID           string              `json:"id"`
	Destination  string              `json:"destination"`
	StartDate    string              `json:"start_date"`
	EndDate      string              `json:"end_date"`
	DurationDays int                 `json:"duration_days"`
	Travelers    int                 `json:"travelers"`
	Budget       float64             `json:"budget"`
	TotalCost    float64             `json:"total_cost"`
	BudgetStatus domain.BudgetStatus `json:"budget_status"`
	CreatedAt    string              `json:"created_at"`
}

// TripRepo stores completed trip plans.
type TripRepo interface {
	Save(ctx context.Context, plan *domain.TripPlan) error
	GetByID(ctx context.Context, id string) (*domain.TripPlan, error)
	List(ctx context.Context, destination string, limit int) ([]TripSummary, error)
	Delete(ctx context.Context, id string) error
}
