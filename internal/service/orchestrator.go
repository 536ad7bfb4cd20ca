package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// StageObserver is notified as the pipeline moves between stages. Used by
// the CLI progress display and the request logs.
type StageObserver func(stage domain.PlanStage)

type orchestrator struct {
	research   ResearchService
	planner    PlannerService
	summarizer SummarizerService
	onStage    StageObserver
}

// NewOrchestrator assembles the three pipeline stages. onStage may be nil.
func NewOrchestrator(research ResearchService, planner PlannerService, summarizer SummarizerService, onStage StageObserver) Orchestrator {
	if onStage == nil {
		onStage = func(domain.PlanStage) {}
	}
	return &orchestrator{
		research:   research,
		planner:    planner,
		summarizer: summarizer,
		onStage:    onStage,
	}
}

// PlanTrip runs the full pipeline. The only failures it surfaces are
// invalid input; once the request validates, every downstream stage
// degrades internally and a complete plan always comes back.
func (o *orchestrator) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripPlan, error) {
	if err := req.Validate(); err != nil {
		o.onStage(domain.StageFailed)
		return nil, fmt.Errorf("Trip planning failed: %w", err)
	}

	o.onStage(domain.StageResearching)
	research := o.research.Research(ctx, req)

	o.onStage(domain.StagePlanning)
	planning := o.planner.Plan(ctx, req, research)

	o.onStage(domain.StageSummarizing)
	summary := o.summarizer.Summarize(ctx, req, planning, research)

	plan := &domain.TripPlan{
		ID:               uuid.NewString(),
		Destination:      req.Destination,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		DurationDays:     planning.DurationDays,
		Travelers:        req.Travelers,
		Budget:           req.Budget,
		Itinerary:        planning.Itinerary,
		CostBreakdown:    planning.CostBreakdown,
		BudgetCompliance: planning.BudgetCompliance,
		Research:         research,
		Summary:          summary.Summary,
		Recommendations:  summary.Recommendations,
		PackingList:      summary.PackingList,
		Overview:         summary.Overview,
		CreatedAt:        time.Now().UTC(),
	}

	o.onStage(domain.StageCompleted)
	return plan, nil
}
