package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-dev/wayfarer/internal/costing"
	"github.com/wayfarer-dev/wayfarer/internal/domain"
	"github.com/wayfarer-dev/wayfarer/internal/repository"
	"github.com/wayfarer-dev/wayfarer/internal/service"
)

// stubOrchestrator returns a canned plan without running the pipeline.
type stubOrchestrator struct {
	plan    *domain.TripPlan
	err     error
	onStage service.StageObserver
	gotReq  domain.TripRequest
}

func (s *stubOrchestrator) PlanTrip(ctx context.Context, req domain.TripRequest) (*domain.TripPlan, error) {
	s.gotReq = req
	if s.onStage != nil {
		s.onStage(domain.StageResearching)
		s.onStage(domain.StageCompleted)
	}
	return s.plan, s.err
}

// memoryTripRepo is an in-memory TripRepo for command tests.
type memoryTripRepo struct {
	plans   map[string]*domain.TripPlan
	deleted []string
}

func newMemoryTripRepo() *memoryTripRepo {
	return &memoryTripRepo{plans: make(map[string]*domain.TripPlan)}
}

func (m *memoryTripRepo) Save(ctx context.Context, plan *domain.TripPlan) error {
	m.plans[plan.ID] = plan
	return nil
}

func (m *memoryTripRepo) GetByID(ctx context.Context, id string) (*domain.TripPlan, error) {
	plan, ok := m.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return plan, nil
}

func (m *memoryTripRepo) List(ctx context.Context, destination string, limit int) ([]repository.TripSummary, error) {
	var out []repository.TripSummary
	for _, p := range m.plans {
		if destination != "" && p.Destination != destination {
			continue
		}
		out = append(out, repository.TripSummary{
			ID:           p.ID,
			Destination:  p.Destination,
			StartDate:    p.StartDate.Format(domain.DateLayout),
			EndDate:      p.EndDate.Format(domain.DateLayout),
			TotalCost:    p.CostBreakdown.TotalCost,
			BudgetStatus: p.BudgetCompliance.Status,
		})
	}
	return out, nil
}

func (m *memoryTripRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.plans, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func samplePlan() *domain.TripPlan {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.TripPlan{
		ID:           "11112222-3333-4444-5555-666677778888",
		Destination:  "Paris",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 4),
		DurationDays: 4,
		Travelers:    2,
		Budget:       3000,
		Itinerary: []domain.ItineraryDay{
			{
				Day:  1,
				Date: "2026-06-01",
				Morning: domain.ActivityBlock{
					Activities:    []string{"Explore the old town"},
					Location:      "Paris",
					EstimatedCost: 30,
				},
				Meals:          domain.MealPlan{Breakfast: "Cafe", Lunch: "Bistro", Dinner: "Brasserie", MealCost: 60},
				Transportation: domain.Transportation{Method: "metro", Cost: 10},
				DailyTotal:     100,
			},
		},
		CostBreakdown: domain.CostBreakdown{
			Breakdown: map[string]float64{
				domain.CategoryFlights:       900,
				domain.CategoryAccommodation: 600,
				domain.CategoryFood:          480,
			},
			TotalCost:     1980,
			CostPerPerson: 990,
			CostPerDay:    495,
			Travelers:     2,
			Currency:      "USD",
		},
		BudgetCompliance: domain.EvaluateBudget(3000, 1980),
		Summary:          "Welcome to Paris! Your personalized travel plan is ready.",
		Recommendations: []domain.Recommendation{
			{Title: "Local Food Tour", Description: "Try the classics.", Category: "dining"},
		},
		PackingList: map[string][]string{"essentials": {"Passport", "Phone charger"}},
		CreatedAt:   start,
	}
}

func testApp(orch *stubOrchestrator, trips repository.TripRepo) *App {
	return &App{
		NewOrchestrator: func(onStage service.StageObserver) service.Orchestrator {
			orch.onStage = onStage
			return orch
		},
		Trips:     trips,
		Estimator: costing.NewModel(costing.DefaultRates()),
	}
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPlanCmd_RunsPipelineAndSaves(t *testing.T) {
	orch := &stubOrchestrator{plan: samplePlan()}
	trips := newMemoryTripRepo()
	app := testApp(orch, trips)

	out, err := runCommand(t, app,
		"plan",
		"--destination", "Paris",
		"--start", "2026-06-01",
		"--end", "2026-06-05",
		"--budget", "3000",
		"--travelers", "2",
		"--style", "luxury",
		"--interests", "culture,food",
	)
	require.NoError(t, err)

	assert.Equal(t, "Paris", orch.gotReq.Destination)
	assert.Equal(t, 2, orch.gotReq.Travelers)
	assert.Equal(t, domain.StyleLuxury, orch.gotReq.Preferences.TravelStyle)
	assert.Equal(t, []string{"culture", "food"}, orch.gotReq.Preferences.Interests)
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "WITHIN BUDGET")

	assert.Len(t, trips.plans, 1, "plan should be saved")
}

func TestPlanCmd_NoSaveFlag(t *testing.T) {
	orch := &stubOrchestrator{plan: samplePlan()}
	trips := newMemoryTripRepo()
	app := testApp(orch, trips)

	_, err := runCommand(t, app,
		"plan",
		"--destination", "Paris",
		"--start", "2026-06-01",
		"--end", "2026-06-05",
		"--budget", "3000",
		"--no-save",
	)
	require.NoError(t, err)
	assert.Empty(t, trips.plans)
}

func TestPlanCmd_RejectsBadDates(t *testing.T) {
	orch := &stubOrchestrator{plan: samplePlan()}
	app := testApp(orch, newMemoryTripRepo())

	_, err := runCommand(t, app,
		"plan",
		"--destination", "Paris",
		"--start", "June 1st",
		"--end", "2026-06-05",
		"--budget", "3000",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestTripsListCmd(t *testing.T) {
	trips := newMemoryTripRepo()
	require.NoError(t, trips.Save(context.Background(), samplePlan()))
	app := testApp(&stubOrchestrator{}, trips)

	out, err := runCommand(t, app, "trips", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "11112222")
}

func TestTripsListCmd_Empty(t *testing.T) {
	app := testApp(&stubOrchestrator{}, newMemoryTripRepo())

	out, err := runCommand(t, app, "trips", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No trips stored yet")
}

func TestTripsShowCmd_NotFound(t *testing.T) {
	app := testApp(&stubOrchestrator{}, newMemoryTripRepo())

	_, err := runCommand(t, app, "trips", "show", "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTripsDeleteCmd(t *testing.T) {
	trips := newMemoryTripRepo()
	plan := samplePlan()
	require.NoError(t, trips.Save(context.Background(), plan))
	app := testApp(&stubOrchestrator{}, trips)

	out, err := runCommand(t, app, "trips", "delete", plan.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted trip")
	assert.Equal(t, []string{plan.ID}, trips.deleted)
}

func TestEstimateCmd(t *testing.T) {
	app := testApp(&stubOrchestrator{}, newMemoryTripRepo())

	out, err := runCommand(t, app, "estimate", "--days", "5", "--travelers", "2", "--style", "mid_range")
	require.NoError(t, err)

	// 5 days, 2 travelers, mid-range: flights 1000 + hotels 750 + daily 1300.
	assert.Contains(t, out, "$3050.00")
	assert.Contains(t, out, "per person")
}

func TestEstimateCmd_RejectsZeroDays(t *testing.T) {
	app := testApp(&stubOrchestrator{}, newMemoryTripRepo())

	_, err := runCommand(t, app, "estimate", "--days", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "days must be at least 1")
}

func TestRenderTripPlan_Sections(t *testing.T) {
	out := RenderTripPlan(samplePlan())

	assert.Contains(t, out, "TRIP TO PARIS")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Explore the old town")
	assert.Contains(t, out, "Local Food Tour")
	assert.Contains(t, out, "Passport")
	assert.Contains(t, out, "$1980.00")

	// Cost categories appear in the fixed order.
	flightsIdx := strings.Index(out, domain.CategoryFlights)
	foodIdx := strings.Index(out, domain.CategoryFood)
	require.GreaterOrEqual(t, flightsIdx, 0)
	require.GreaterOrEqual(t, foodIdx, 0)
	assert.Less(t, flightsIdx, foodIdx)
}

func TestStageLabels(t *testing.T) {
	assert.Equal(t, "Researching destination", stageLabel(domain.StageResearching))
	assert.Equal(t, "Building itinerary", stageLabel(domain.StagePlanning))
	assert.Equal(t, "Writing summary", stageLabel(domain.StageSummarizing))
	assert.Equal(t, "Done", stageLabel(domain.StageCompleted))
}
