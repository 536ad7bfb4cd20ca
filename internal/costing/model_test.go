package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

func researchWith(flights []domain.FlightOffer, hotels []domain.HotelOffer) *domain.ResearchResult {
	return &domain.ResearchResult{
		Destination: "Paris",
		Flights:     domain.Ok(flights),
		Hotels:      domain.Ok(hotels),
	}
}

func TestCompute_CheapestOfferSelection(t *testing.T) {
	m := NewModel(DefaultRates())

	research := researchWith(
		[]domain.FlightOffer{{Price: 400}, {Price: 320}},
		[]domain.HotelOffer{{PricePerNight: 150}, {PricePerNight: 90}},
	)

	breakdown := m.Compute(Input{
		Travelers:    2,
		DurationDays: 4,
		Style:        domain.StyleMidRange,
		Research:     research,
	})

	assert.Equal(t, 640.0, breakdown.Breakdown[domain.CategoryFlights], "minimum price times travelers")
	assert.Equal(t, 360.0, breakdown.Breakdown[domain.CategoryAccommodation], "minimum per-night price times nights")
}

func TestCompute_IgnoresNonPositiveOffers(t *testing.T) {
	m := NewModel(DefaultRates())

	research := researchWith(
		[]domain.FlightOffer{{Price: 0}, {Price: -10}, {Price: 410}},
		[]domain.HotelOffer{{PricePerNight: 0}},
	)

	breakdown := m.Compute(Input{
		Travelers:    1,
		DurationDays: 3,
		Style:        domain.StyleMidRange,
		Research:     research,
	})

	assert.Equal(t, 410.0, breakdown.Breakdown[domain.CategoryFlights])
	// no positive hotel price, so the base rate applies
	assert.Equal(t, 450.0, breakdown.Breakdown[domain.CategoryAccommodation])
}

func TestCompute_FallbackRatesWhenProvidersFailed(t *testing.T) {
	m := NewModel(DefaultRates())

	research := &domain.ResearchResult{
		Destination: "Paris",
		Flights:     domain.Failed[[]domain.FlightOffer]("timeout"),
		Hotels:      domain.Failed[[]domain.HotelOffer]("timeout"),
	}

	breakdown := m.Compute(Input{
		Travelers:    2,
		DurationDays: 4,
		Style:        domain.StyleBudget,
		Research:     research,
	})

	assert.Equal(t, 700.0, breakdown.Breakdown[domain.CategoryFlights], "500 * 0.7 * 2")
	assert.Equal(t, 420.0, breakdown.Breakdown[domain.CategoryAccommodation], "150 * 0.7 * 4")
	assert.Greater(t, breakdown.TotalCost, 0.0)
}

func TestCompute_FoodAndActivitiesAlwaysRateBased(t *testing.T) {
	m := NewModel(DefaultRates())

	research := researchWith(
		[]domain.FlightOffer{{Price: 100}},
		[]domain.HotelOffer{{PricePerNight: 50}},
	)

	breakdown := m.Compute(Input{
		Travelers:    2,
		DurationDays: 4,
		Style:        domain.StyleLuxury,
		Research:     research,
	})

	assert.Equal(t, 864.0, breakdown.Breakdown[domain.CategoryFood], "60 * 1.8 * 4 * 2")
	assert.Equal(t, 720.0, breakdown.Breakdown[domain.CategoryActivities], "50 * 1.8 * 4 * 2")
}

func TestCompute_TotalReconcilesWithBreakdown(t *testing.T) {
	m := NewModel(DefaultRates())

	breakdown := m.Compute(Input{
		Travelers:    3,
		DurationDays: 5,
		Style:        domain.StyleLuxury,
	})

	assert.True(t, breakdown.Reconciled(), "total must equal sum of categories")
	assert.Equal(t, domain.Round2(breakdown.TotalCost/3), breakdown.CostPerPerson)
	assert.Equal(t, domain.Round2(breakdown.TotalCost/5), breakdown.CostPerDay)
}

func TestCompute_ItineraryTransportPreferred(t *testing.T) {
	m := NewModel(DefaultRates())

	itinerary := []domain.ItineraryDay{
		{Transportation: domain.Transportation{Cost: 25}},
		{Transportation: domain.Transportation{Cost: 35}},
	}

	breakdown := m.Compute(Input{
		Itinerary:    itinerary,
		Travelers:    2,
		DurationDays: 2,
		Style:        domain.StyleMidRange,
	})

	assert.Equal(t, 60.0, breakdown.Breakdown[domain.CategoryTransportation])
}

func TestCompute_LuxuryWeekExceedsTinyBudget(t *testing.T) {
	m := NewModel(DefaultRates())

	breakdown := m.Compute(Input{
		Travelers:    1,
		DurationDays: 7,
		Style:        domain.StyleLuxury,
	})
	compliance := domain.EvaluateBudget(100, breakdown.TotalCost)

	assert.False(t, compliance.WithinBudget)
	assert.Equal(t, domain.BudgetOver, compliance.Status)
	assert.Negative(t, compliance.Remaining)
}

func TestEstimateBudget(t *testing.T) {
	m := NewModel(DefaultRates())

	est := m.EstimateBudget(5, 2, domain.StyleMidRange)

	require.NotNil(t, est.Breakdown)
	assert.Equal(t, 1000.0, est.Breakdown[domain.CategoryFlights], "500 * 2")
	assert.Equal(t, 750.0, est.Breakdown[domain.CategoryAccommodation], "150 * 5")
	assert.Equal(t, 1300.0, est.Breakdown["daily_expenses"], "(60+50+20) * 5 * 2")
	assert.Equal(t, 3050.0, est.EstimatedCost)
	assert.Equal(t, 1525.0, est.CostPerPerson)
	assert.Equal(t, 610.0, est.CostPerDay)
}

func TestEstimateBudget_StyleScalesAllCategories(t *testing.T) {
	m := NewModel(DefaultRates())

	mid := m.EstimateBudget(5, 2, domain.StyleMidRange)
	lux := m.EstimateBudget(5, 2, domain.StyleLuxury)

	assert.Equal(t, domain.Round2(mid.EstimatedCost*1.8), lux.EstimatedCost)
}

func TestCompute_ClampsDegenerateInputs(t *testing.T) {
	m := NewModel(DefaultRates())

	breakdown := m.Compute(Input{Travelers: 0, DurationDays: 0, Style: domain.StyleMidRange})

	assert.Equal(t, 1, breakdown.Travelers)
	assert.Greater(t, breakdown.TotalCost, 0.0)
	assert.True(t, breakdown.Reconciled())
}
