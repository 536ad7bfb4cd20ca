package service

import (
	"context"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/intelligence"
)

type summarizerService struct {
	summaries intelligence.SummaryService
}

func NewSummarizerService(summaries intelligence.SummaryService) SummarizerService {
	return &summarizerService{summaries: summaries}
}

// Summarize builds the narrative layer on top of the planning output.
// The trip overview uses only upstream data, so it is present even when
// every generation call falls back.
func (s *summarizerService) Summarize(ctx context.Context, req domain.TripRequest, planning PlanningOutput, research domain.ResearchResult) SummaryOutput {
	return SummaryOutput{
		Summary:         s.summaries.Summarize(ctx, req, planning.Itinerary, planning.CostBreakdown),
		Recommendations: s.summaries.Recommendations(ctx, req, planning.Itinerary),
		PackingList:     s.summaries.PackingList(ctx, req, &research),
		Overview: domain.TripOverview{
			Destination:  req.Destination,
			DurationDays: planning.DurationDays,
			TotalCost:    planning.CostBreakdown.TotalCost,
			BudgetStatus: planning.BudgetCompliance.Status,
			CreatedAt:    planning.CreatedAt,
		},
	}
}
