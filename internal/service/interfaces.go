// Package service contains the planning pipeline stages and the
// orchestrator that runs them in sequence.
package service

import (
	"context"
	"time"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// ResearchService gathers destination data from all providers in parallel.
// It never fails: individual lookup failures become per-field error
// markers on the result.
type ResearchService interface {
	Research(ctx context.Context, req domain.TripRequest) domain.ResearchResult
}

// PlanningOutput is the result of the planning stage.
type PlanningOutput struct {
	Itinerary        []domain.ItineraryDay
	CostBreakdown    domain.CostBreakdown
	BudgetCompliance domain.BudgetCompliance
	DurationDays     int
	CreatedAt        time.Time
}

// PlannerService turns research output into an itinerary with costs and
// budget compliance attached.
type PlannerService interface {
	Plan(ctx context.Context, req domain.TripRequest, research domain.ResearchResult) PlanningOutput
}

// SummaryOutput is the result of the summarization stage.
type SummaryOutput struct {
	Summary         string
	Recommendations []domain.Recommendation
	PackingList     map[string][]string
	Overview        domain.TripOverview
}

// SummarizerService produces the narrative layer of the plan. The trip
// overview is assembled purely from upstream data and is available even
// when every LLM call fails.
type SummarizerService interface {
	Summarize(ctx context.Context, req domain.TripRequest, planning PlanningOutput, research domain.ResearchResult) SummaryOutput
}

// Orchestrator runs the full research, planning, and summarization
// pipeline for one trip request.
type Orchestrator interface {
	PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripPlan, error)
}
