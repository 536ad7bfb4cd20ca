package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/llm"
)

// ItineraryService builds the day-by-day itinerary for a trip. Generation
// never fails: when the LLM is unavailable or its output cannot be used,
// a deterministic budget-split itinerary is produced instead.
type ItineraryService interface {
	Generate(ctx context.Context, req domain.TripRequest, research *domain.ResearchResult) []domain.ItineraryDay
}

type itineraryService struct {
	client llm.Client
}

func NewItineraryService(client llm.Client) ItineraryService {
	return &itineraryService{client: client}
}

func (s *itineraryService) Generate(ctx context.Context, req domain.TripRequest, research *domain.ResearchResult) []domain.ItineraryDay {
	duration := req.DurationDays()

	days, err := s.generateWithLLM(ctx, req, research)
	if err != nil {
		return FallbackItinerary(req)
	}
	return normalizeItinerary(days, req, duration)
}

func (s *itineraryService) generateWithLLM(ctx context.Context, req domain.TripRequest, research *domain.ResearchResult) ([]domain.ItineraryDay, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskItinerary,
		SystemPrompt: itinerarySystemPrompt,
		UserPrompt:   buildItineraryPrompt(req, research),
	})
	if err != nil {
		return nil, fmt.Errorf("llm itinerary generation failed: %w", err)
	}

	days, err := llm.ExtractJSONArray[domain.ItineraryDay](resp.Text, validateItineraryDays)
	if err != nil {
		return nil, fmt.Errorf("failed to extract itinerary: %w", err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("llm returned an empty itinerary")
	}
	return days, nil
}

func buildItineraryPrompt(req domain.TripRequest, research *domain.ResearchResult) string {
	var b strings.Builder

	duration := req.DurationDays()
	fmt.Fprintf(&b, "Create a %d-day itinerary for %s for %d traveler(s).\n",
		duration, req.Destination, req.Travelers)
	fmt.Fprintf(&b, "Dates: %s to %s\n",
		req.StartDate.Format(domain.DateLayout), req.EndDate.Format(domain.DateLayout))
	fmt.Fprintf(&b, "Budget: $%.2f\n", req.Budget)
	fmt.Fprintf(&b, "Travel style: %s\n", req.Preferences.Style())
	if len(req.Preferences.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(req.Preferences.Interests, ", "))
	}
	if req.Preferences.SpecialRequests != "" {
		fmt.Fprintf(&b, "Special requests: %s\n", req.Preferences.SpecialRequests)
	}

	if research != nil {
		if research.Weather.OK() && len(research.Weather.Data.Forecast) > 0 {
			b.WriteString("\nForecast:\n")
			for _, f := range research.Weather.Data.Forecast {
				fmt.Fprintf(&b, "- %s: %s, high %.0fC low %.0fC\n", f.Date, f.Conditions, f.HighC, f.LowC)
			}
		}
		if research.Attractions.OK() && research.Attractions.Data != "" {
			fmt.Fprintf(&b, "\nAttractions:\n%s\n", research.Attractions.Data)
		}
		if research.DestinationInfo.OK() && research.DestinationInfo.Data != "" {
			fmt.Fprintf(&b, "\nDestination notes:\n%s\n", research.DestinationInfo.Data)
		}
	}

	return b.String()
}

// validateItineraryDays rejects structurally unusable output early so the
// fallback kicks in rather than a broken plan propagating downstream.
func validateItineraryDays(days []domain.ItineraryDay) error {
	for _, d := range days {
		if err := validateItineraryDay(d); err != nil {
			return err
		}
	}
	return nil
}

func validateItineraryDay(d domain.ItineraryDay) error {
	if d.Day < 1 {
		return fmt.Errorf("day index must be >= 1, got %d", d.Day)
	}
	for _, block := range []domain.ActivityBlock{d.Morning, d.Afternoon, d.Evening} {
		if block.EstimatedCost < 0 {
			return fmt.Errorf("day %d has a negative block cost", d.Day)
		}
	}
	if d.Meals.MealCost < 0 {
		return fmt.Errorf("day %d has a negative meal cost", d.Day)
	}
	if d.Transportation.Cost < 0 {
		return fmt.Errorf("day %d has a negative transport cost", d.Day)
	}
	return nil
}

// FallbackItinerary builds the deterministic budget-split itinerary. The
// daily budget splits 30/40/30 across morning, afternoon, and evening,
// with meals at 40% and transport at 10% of the daily budget.
func FallbackItinerary(req domain.TripRequest) []domain.ItineraryDay {
	duration := req.DurationDays()
	if duration < 1 {
		duration = 1
	}
	dailyBudget := req.Budget / float64(duration)

	days := make([]domain.ItineraryDay, 0, duration)
	for i := 0; i < duration; i++ {
		day := domain.ItineraryDay{
			Day:  i + 1,
			Date: req.StartDate.AddDate(0, 0, i).Format(domain.DateLayout),
			Morning: domain.ActivityBlock{
				Activities:    []string{"Explore local area", "Visit main attractions"},
				Location:      "City center",
				EstimatedCost: domain.Round2(dailyBudget * 0.3),
				DurationHours: 3,
			},
			Afternoon: domain.ActivityBlock{
				Activities:    []string{"Cultural site visit", "Local market"},
				Location:      "Historic district",
				EstimatedCost: domain.Round2(dailyBudget * 0.4),
				DurationHours: 4,
			},
			Evening: domain.ActivityBlock{
				Activities:    []string{"Dinner", "Evening entertainment"},
				Location:      "Downtown area",
				EstimatedCost: domain.Round2(dailyBudget * 0.3),
				DurationHours: 4,
			},
			Meals: domain.MealPlan{
				Breakfast: "Local cafe",
				Lunch:     "Traditional restaurant",
				Dinner:    "Fine dining",
				MealCost:  domain.Round2(dailyBudget * 0.4),
			},
			Transportation: domain.Transportation{
				Method: "Public transport",
				Cost:   domain.Round2(dailyBudget * 0.1),
				Notes:  "Use local transport",
			},
		}
		day.DailyTotal = domain.Round2(day.Subtotal())
		days = append(days, day)
	}
	return days
}

// normalizeItinerary forces the itinerary into shape: exactly duration
// days with contiguous 1-based indexes, dates aligned to the trip start,
// and daily totals that reconcile with the sub-costs. Short itineraries
// are padded with fallback days, long ones truncated.
func normalizeItinerary(days []domain.ItineraryDay, req domain.TripRequest, duration int) []domain.ItineraryDay {
	if len(days) > duration {
		days = days[:duration]
	}
	if len(days) < duration {
		pad := FallbackItinerary(req)
		days = append(days, pad[len(days):]...)
	}

	for i := range days {
		days[i].Day = i + 1
		days[i].Date = req.StartDate.AddDate(0, 0, i).Format(domain.DateLayout)
		if days[i].Morning.DurationHours <= 0 {
			days[i].Morning.DurationHours = 3
		}
		if days[i].Afternoon.DurationHours <= 0 {
			days[i].Afternoon.DurationHours = 4
		}
		if days[i].Evening.DurationHours <= 0 {
			days[i].Evening.DurationHours = 4
		}
		days[i].DailyTotal = domain.Round2(days[i].Subtotal())
	}
	return days
}
