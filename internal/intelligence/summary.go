package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/llm"
)

// SummaryService produces the narrative layer of a trip plan. Every
// method degrades to a fixed deterministic output, so summarization can
// never fail a planning request.
type SummaryService interface {
	Summarize(ctx context.Context, req domain.TripRequest, itinerary []domain.ItineraryDay, costs domain.CostBreakdown) string
	Recommendations(ctx context.Context, req domain.TripRequest, itinerary []domain.ItineraryDay) []domain.Recommendation
	PackingList(ctx context.Context, req domain.TripRequest, research *domain.ResearchResult) map[string][]string
}

type summaryService struct {
	client llm.Client
}

func NewSummaryService(client llm.Client) SummaryService {
	return &summaryService{client: client}
}

func (s *summaryService) Summarize(ctx context.Context, req domain.TripRequest, itinerary []domain.ItineraryDay, costs domain.CostBreakdown) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Summarize this %d-day trip to %s for %d traveler(s).\n",
		req.DurationDays(), req.Destination, req.Travelers)
	fmt.Fprintf(&b, "Budget: $%.2f, estimated cost: $%.2f\n", req.Budget, costs.TotalCost)
	b.WriteString("\nItinerary highlights:\n")
	b.WriteString(formatItineraryHighlights(itinerary))
	b.WriteString("\nCost breakdown:\n")
	for category, amount := range costs.Breakdown {
		fmt.Fprintf(&b, "- %s: $%.2f\n", category, amount)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSummary,
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return FallbackSummary(req.Destination)
	}
	return strings.TrimSpace(resp.Text)
}

func (s *summaryService) Recommendations(ctx context.Context, req domain.TripRequest, itinerary []domain.ItineraryDay) []domain.Recommendation {
	var b strings.Builder
	fmt.Fprintf(&b, "Destination: %s\n", req.Destination)
	if len(req.Preferences.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Preferences.Interests, ", "))
	}
	b.WriteString("\nItinerary:\n")
	b.WriteString(formatItineraryHighlights(itinerary))

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRecommendations,
		SystemPrompt: recommendationsSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return FallbackRecommendations()
	}

	recs, err := llm.ExtractJSONArray[domain.Recommendation](resp.Text, validateRecommendations)
	if err != nil || len(recs) == 0 {
		return FallbackRecommendations()
	}
	return recs
}

func (s *summaryService) PackingList(ctx context.Context, req domain.TripRequest, research *domain.ResearchResult) map[string][]string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a packing list for a %d-day trip to %s.\n",
		req.DurationDays(), req.Destination)
	if research != nil && research.Weather.OK() {
		fmt.Fprintf(&b, "Current weather: %s, %.0fC\n",
			research.Weather.Data.Current.Conditions, research.Weather.Data.Current.TempC)
	}
	if len(req.Preferences.Interests) > 0 {
		fmt.Fprintf(&b, "Planned around: %s\n", strings.Join(req.Preferences.Interests, ", "))
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPackingList,
		SystemPrompt: packingSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return FallbackPackingList()
	}

	list, err := llm.ExtractJSON[map[string][]string](resp.Text, validatePackingList)
	if err != nil {
		return FallbackPackingList()
	}
	return list
}

func validateRecommendations(recs []domain.Recommendation) error {
	for _, r := range recs {
		if err := validateRecommendation(r); err != nil {
			return err
		}
	}
	return nil
}

func validateRecommendation(r domain.Recommendation) error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("recommendation title is empty")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("recommendation description is empty")
	}
	return nil
}

// validatePackingList requires at least one non-empty category. Missing
// categories are tolerated; an entirely empty map is not.
func validatePackingList(list map[string][]string) error {
	for _, items := range list {
		if len(items) > 0 {
			return nil
		}
	}
	return fmt.Errorf("packing list has no items")
}

func formatItineraryHighlights(itinerary []domain.ItineraryDay) string {
	var b strings.Builder
	for _, day := range itinerary {
		fmt.Fprintf(&b, "Day %d:\n", day.Day)
		fmt.Fprintf(&b, "  Morning: %s\n", strings.Join(day.Morning.Activities, ", "))
		fmt.Fprintf(&b, "  Afternoon: %s\n", strings.Join(day.Afternoon.Activities, ", "))
		fmt.Fprintf(&b, "  Evening: %s\n", strings.Join(day.Evening.Activities, ", "))
	}
	return b.String()
}
