// Package costing implements the pure cost model for trip plans. It does
// no I/O, so numeric behavior can be verified in isolation.
package costing

import (
	"time"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// Rates holds the per-day base rates used when no provider data is
// available. Values are USD for a single mid-range traveler.
type Rates struct {
	FlightPerTraveler float64
	HotelPerNight     float64
	FoodPerDay        float64
	ActivitiesPerDay  float64
	TransportPerDay   float64
	MiscPerTraveler   float64
}

// DefaultRates mirrors the rates the estimator and fallback paths share.
func DefaultRates() Rates {
	return Rates{
		FlightPerTraveler: 500,
		HotelPerNight:     150,
		FoodPerDay:        60,
		ActivitiesPerDay:  50,
		TransportPerDay:   20,
		MiscPerTraveler:   100,
	}
}

// Model computes cost breakdowns from an itinerary and research data.
type Model struct {
	rates Rates
}

func NewModel(rates Rates) *Model {
	return &Model{rates: rates}
}

// Input bundles everything the cost model needs for one computation.
type Input struct {
	Itinerary    []domain.ItineraryDay
	Travelers    int
	DurationDays int
	Style        domain.TravelStyle
	Research     *domain.ResearchResult
}

// Compute builds a CostBreakdown. Flight and accommodation categories use
// the cheapest valid provider offer when one exists; food and activities
// are always rate-based so the style multiplier has a visible effect.
func (m *Model) Compute(in Input) domain.CostBreakdown {
	travelers := in.Travelers
	if travelers < 1 {
		travelers = 1
	}
	days := in.DurationDays
	if days < 1 {
		days = 1
	}
	mult := in.Style.Multiplier()

	breakdown := map[string]float64{
		domain.CategoryFlights:        m.flightCost(in.Research, travelers, mult),
		domain.CategoryAccommodation:  m.hotelCost(in.Research, days, mult),
		domain.CategoryFood:           domain.Round2(m.rates.FoodPerDay * mult * float64(days) * float64(travelers)),
		domain.CategoryActivities:     domain.Round2(m.rates.ActivitiesPerDay * mult * float64(days) * float64(travelers)),
		domain.CategoryTransportation: m.transportCost(in.Itinerary, days, travelers),
		domain.CategoryMiscellaneous:  domain.Round2(m.rates.MiscPerTraveler * float64(travelers)),
	}

	var total float64
	for _, v := range breakdown {
		total += v
	}
	total = domain.Round2(total)

	return domain.CostBreakdown{
		Breakdown:     breakdown,
		TotalCost:     total,
		CostPerPerson: domain.Round2(total / float64(travelers)),
		CostPerDay:    domain.Round2(total / float64(days)),
		Travelers:     travelers,
		Currency:      "USD",
	}
}

// flightCost applies the cheapest-available policy: the minimum positive
// offer price times traveler count, or the base rate when no usable
// offers exist.
func (m *Model) flightCost(research *domain.ResearchResult, travelers int, mult float64) float64 {
	if research != nil && research.Flights.OK() {
		if min, ok := cheapestFlight(research.Flights.Data); ok {
			return domain.Round2(min * float64(travelers))
		}
	}
	return domain.Round2(m.rates.FlightPerTraveler * mult * float64(travelers))
}

// hotelCost uses the minimum positive per-night price times nights, or the
// base rate when no usable offers exist. One trip day equals one night.
func (m *Model) hotelCost(research *domain.ResearchResult, nights int, mult float64) float64 {
	if research != nil && research.Hotels.OK() {
		if min, ok := cheapestHotel(research.Hotels.Data); ok {
			return domain.Round2(min * float64(nights))
		}
	}
	return domain.Round2(m.rates.HotelPerNight * mult * float64(nights))
}

// transportCost prefers the itinerary's own per-day transport estimates,
// falling back to the base rate when the itinerary carries none.
func (m *Model) transportCost(itinerary []domain.ItineraryDay, days, travelers int) float64 {
	var total float64
	for _, day := range itinerary {
		total += day.Transportation.Cost
	}
	if total > 0 {
		return domain.Round2(total)
	}
	return domain.Round2(m.rates.TransportPerDay * float64(days) * float64(travelers))
}

func cheapestFlight(offers []domain.FlightOffer) (float64, bool) {
	var min float64
	found := false
	for _, o := range offers {
		if o.Price <= 0 {
			continue
		}
		if !found || o.Price < min {
			min = o.Price
			found = true
		}
	}
	return min, found
}

func cheapestHotel(offers []domain.HotelOffer) (float64, bool) {
	var min float64
	found := false
	for _, o := range offers {
		if o.PricePerNight <= 0 {
			continue
		}
		if !found || o.PricePerNight < min {
			min = o.PricePerNight
			found = true
		}
	}
	return min, found
}

// Estimate is a pre-planning budget projection for a destination and
// travel style, computed entirely from base rates.
type Estimate struct {
	Style         domain.TravelStyle `json:"style"`
	EstimatedCost float64            `json:"estimated_cost"`
	CostPerPerson float64            `json:"cost_per_person"`
	CostPerDay    float64            `json:"cost_per_day"`
	Breakdown     map[string]float64 `json:"breakdown"`
	GeneratedAt   time.Time          `json:"generated_at"`
}

// EstimateBudget projects a likely trip cost before any research happens.
// Useful for the estimate endpoint and the CLI estimate command.
func (m *Model) EstimateBudget(days, travelers int, style domain.TravelStyle) Estimate {
	if days < 1 {
		days = 1
	}
	if travelers < 1 {
		travelers = 1
	}
	mult := style.Multiplier()

	flights := domain.Round2(m.rates.FlightPerTraveler * float64(travelers) * mult)
	hotels := domain.Round2(m.rates.HotelPerNight * float64(days) * mult)
	daily := domain.Round2((m.rates.FoodPerDay + m.rates.ActivitiesPerDay + m.rates.TransportPerDay) *
		float64(days) * float64(travelers) * mult)

	total := domain.Round2(flights + hotels + daily)

	return Estimate{
		Style:         style,
		EstimatedCost: total,
		CostPerPerson: domain.Round2(total / float64(travelers)),
		CostPerDay:    domain.Round2(total / float64(days)),
		Breakdown: map[string]float64{
			domain.CategoryFlights:       flights,
			domain.CategoryAccommodation: hotels,
			"daily_expenses":             daily,
		},
		GeneratedAt: time.Now().UTC(),
	}
}
