package service

import (
	"context"
	"time"

	"github.com/wayfarer-dev/wayfarer/internal/costing"
	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/intelligence"
)

type plannerService struct {
	itinerary intelligence.ItineraryService
	costs     *costing.Model
}

func NewPlannerService(itinerary intelligence.ItineraryService, costs *costing.Model) PlannerService {
	return &plannerService{itinerary: itinerary, costs: costs}
}

// Plan produces the itinerary, reconciles it with the cost model, and
// attaches budget compliance. Input validation happens upstream in the
// orchestrator; by this point the request is structurally sound and the
// stage cannot fail.
func (s *plannerService) Plan(ctx context.Context, req domain.TripRequest, research domain.ResearchResult) PlanningOutput {
	duration := req.DurationDays()
	itinerary := s.itinerary.Generate(ctx, req, &research)

	breakdown := s.costs.Compute(costing.Input{
		Itinerary:    itinerary,
		Travelers:    req.Travelers,
		DurationDays: duration,
		Style:        req.Preferences.Style(),
		Research:     &research,
	})

	return PlanningOutput{
		Itinerary:        itinerary,
		CostBreakdown:    breakdown,
		BudgetCompliance: domain.EvaluateBudget(req.Budget, breakdown.TotalCost),
		DurationDays:     duration,
		CreatedAt:        time.Now().UTC(),
	}
}
