package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-dev/wayfarer/internal/cache"
	"github.com/wayfarer-dev/wayfarer/internal/costing"
	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/intelligence"
	"github.com/wayfarer-dev/wayfarer/internal/llm"
)

// failingWeather, failingFlights, and failingHotels simulate providers
// whose own fallbacks have been bypassed, the worst case the research
// stage must absorb.
type failingWeather struct{}

func (failingWeather) Forecast(context.Context, string, time.Time, time.Time) (domain.WeatherReport, error) {
	return domain.WeatherReport{}, errors.New("weather upstream down")
}

type failingFlights struct{}

func (failingFlights) Search(context.Context, string, string, time.Time, time.Time, int) ([]domain.FlightOffer, error) {
	return nil, errors.New("flight upstream down")
}

type failingHotels struct{}

func (failingHotels) Search(context.Context, string, time.Time, time.Time, int) ([]domain.HotelOffer, error) {
	return nil, errors.New("hotel upstream down")
}

type panickingWeather struct{}

func (panickingWeather) Forecast(context.Context, string, time.Time, time.Time) (domain.WeatherReport, error) {
	panic("adapter bug")
}

type stubWeather struct{ report domain.WeatherReport }

func (s stubWeather) Forecast(context.Context, string, time.Time, time.Time) (domain.WeatherReport, error) {
	return s.report, nil
}

type stubFlights struct{ offers []domain.FlightOffer }

func (s stubFlights) Search(context.Context, string, string, time.Time, time.Time, int) ([]domain.FlightOffer, error) {
	return s.offers, nil
}

type stubHotels struct{ offers []domain.HotelOffer }

func (s stubHotels) Search(context.Context, string, time.Time, time.Time, int) ([]domain.HotelOffer, error) {
	return s.offers, nil
}

func parisRequest(t *testing.T) domain.TripRequest {
	t.Helper()
	start, err := time.Parse(domain.DateLayout, "2024-06-01")
	require.NoError(t, err)
	end, err := time.Parse(domain.DateLayout, "2024-06-05")
	require.NoError(t, err)
	return domain.TripRequest{
		Destination: "Paris",
		StartDate:   start,
		EndDate:     end,
		Budget:      2000,
		Travelers:   2,
		Preferences: domain.Preferences{Interests: []string{"culture", "food"}},
	}
}

func failingResearchService() ResearchService {
	return NewResearchService(
		failingWeather{}, failingFlights{}, failingHotels{},
		intelligence.NewKnowledgeService(llm.Disabled{}),
		cache.Noop{}, "JFK",
	)
}

func offlineOrchestrator(onStage StageObserver) Orchestrator {
	planner := NewPlannerService(
		intelligence.NewItineraryService(llm.Disabled{}),
		costing.NewModel(costing.DefaultRates()),
	)
	summarizer := NewSummarizerService(intelligence.NewSummaryService(llm.Disabled{}))
	return NewOrchestrator(failingResearchService(), planner, summarizer, onStage)
}

func TestResearch_AllLookupsFailingProducesMarkers(t *testing.T) {
	svc := failingResearchService()

	result := svc.Research(context.Background(), parisRequest(t))

	assert.Equal(t, "Paris", result.Destination)
	assert.False(t, result.Weather.OK())
	assert.Equal(t, "weather upstream down", result.Weather.Err)
	assert.False(t, result.Flights.OK())
	assert.False(t, result.Hotels.OK())
	assert.False(t, result.DestinationInfo.OK())
	assert.False(t, result.Attractions.OK())
	assert.False(t, result.ResearchedAt.IsZero())
}

func TestResearch_PanickingLookupBecomesMarker(t *testing.T) {
	svc := NewResearchService(
		panickingWeather{},
		stubFlights{offers: []domain.FlightOffer{{Airline: "Delta", Price: 450}}},
		stubHotels{offers: []domain.HotelOffer{{Name: "City Lodge", PricePerNight: 95}}},
		intelligence.NewKnowledgeService(llm.Disabled{}),
		cache.Noop{}, "JFK",
	)

	result := svc.Research(context.Background(), parisRequest(t))

	assert.False(t, result.Weather.OK())
	assert.Contains(t, result.Weather.Err, "lookup panicked")
	assert.True(t, result.Flights.OK(), "other lookups are unaffected")
	assert.True(t, result.Hotels.OK())
}

// memoryCache records Get/Set traffic for cache interaction tests.
type memoryCache struct {
	store map[string]*domain.ResearchResult
	hits  int
}

func (c *memoryCache) Get(_ context.Context, key string) (*domain.ResearchResult, bool) {
	if r, ok := c.store[key]; ok {
		c.hits++
		return r, true
	}
	return nil, false
}

func (c *memoryCache) Set(_ context.Context, key string, result *domain.ResearchResult) {
	c.store[key] = result
}

func TestResearch_CachedResultSkipsLookups(t *testing.T) {
	mc := &memoryCache{store: map[string]*domain.ResearchResult{}}
	svc := NewResearchService(
		failingWeather{}, failingFlights{}, failingHotels{},
		intelligence.NewKnowledgeService(llm.Disabled{}),
		mc, "JFK",
	)
	req := parisRequest(t)

	first := svc.Research(context.Background(), req)
	second := svc.Research(context.Background(), req)

	assert.Equal(t, 1, mc.hits)
	assert.Equal(t, first.ResearchedAt, second.ResearchedAt, "second call served from cache")
}

func TestPlanner_UsesProviderPrices(t *testing.T) {
	planner := NewPlannerService(
		intelligence.NewItineraryService(llm.Disabled{}),
		costing.NewModel(costing.DefaultRates()),
	)
	req := parisRequest(t)
	research := domain.ResearchResult{
		Destination: "Paris",
		Flights:     domain.Ok([]domain.FlightOffer{{Price: 400}, {Price: 320}}),
		Hotels:      domain.Ok([]domain.HotelOffer{{PricePerNight: 90}}),
	}

	out := planner.Plan(context.Background(), req, research)

	assert.Equal(t, 4, out.DurationDays)
	require.Len(t, out.Itinerary, 4)
	assert.Equal(t, 640.0, out.CostBreakdown.Breakdown[domain.CategoryFlights])
	assert.Equal(t, 360.0, out.CostBreakdown.Breakdown[domain.CategoryAccommodation])
	assert.Equal(t, out.BudgetCompliance.WithinBudget, out.CostBreakdown.TotalCost <= req.Budget)
}

func TestOrchestrator_CompletePlanWithEverythingFailing(t *testing.T) {
	orch := offlineOrchestrator(nil)

	plan, err := orch.PlanTrip(context.Background(), parisRequest(t))

	require.NoError(t, err, "provider and LLM failures are never fatal")
	require.NotNil(t, plan)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "Paris", plan.Destination)
	assert.Equal(t, 4, plan.DurationDays)
	assert.Len(t, plan.Itinerary, 4)
	assert.Greater(t, plan.CostBreakdown.TotalCost, 0.0)
	assert.Contains(t, []domain.BudgetStatus{domain.BudgetWithin, domain.BudgetOver}, plan.BudgetCompliance.Status)
	assert.NotEmpty(t, plan.Summary)
	assert.GreaterOrEqual(t, len(plan.Recommendations), 3)
	assert.NotEmpty(t, plan.PackingList["documents"])
	assert.Equal(t, plan.CostBreakdown.TotalCost, plan.Overview.TotalCost)
	assert.False(t, plan.CreatedAt.IsZero())
}

func TestOrchestrator_InvalidDateRangeIsFatal(t *testing.T) {
	orch := offlineOrchestrator(nil)
	req := parisRequest(t)
	req.EndDate = req.StartDate

	plan, err := orch.PlanTrip(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Contains(t, err.Error(), "Trip planning failed")
}

func TestOrchestrator_StageProgression(t *testing.T) {
	var stages []domain.PlanStage
	orch := offlineOrchestrator(func(s domain.PlanStage) { stages = append(stages, s) })

	_, err := orch.PlanTrip(context.Background(), parisRequest(t))
	require.NoError(t, err)

	assert.Equal(t, []domain.PlanStage{
		domain.StageResearching,
		domain.StagePlanning,
		domain.StageSummarizing,
		domain.StageCompleted,
	}, stages)
}

func TestOrchestrator_ValidationFailureReportsFailedStage(t *testing.T) {
	var stages []domain.PlanStage
	orch := offlineOrchestrator(func(s domain.PlanStage) { stages = append(stages, s) })

	req := parisRequest(t)
	req.Budget = 0
	_, err := orch.PlanTrip(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, []domain.PlanStage{domain.StageFailed}, stages)
}
