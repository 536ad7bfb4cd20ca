package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// ErrInvalidDateRange indicates end_date is not strictly after start_date.
// It is the only input error the planning stage surfaces to the caller.
var ErrInvalidDateRange = errors.New("end date must be after start date")

// Preferences holds the open-ended traveler preferences attached to a request.
type Preferences struct {
	Interests       []string    `json:"interests,omitempty"`
	ComfortLevel    string      `json:"comfort_level,omitempty"`
	TravelStyle     TravelStyle `json:"travel_style,omitempty"`
	SpecialRequests string      `json:"special_requests,omitempty"`
}

// Style resolves the effective travel style, preferring TravelStyle and
// falling back to ComfortLevel. Defaults to mid-range.
func (p Preferences) Style() TravelStyle {
	switch p.TravelStyle {
	case StyleBudget, StyleMidRange, StyleLuxury:
		return p.TravelStyle
	}
	switch TravelStyle(p.ComfortLevel) {
	case StyleBudget, StyleMidRange, StyleLuxury:
		return TravelStyle(p.ComfortLevel)
	}
	return StyleMidRange
}

// TripRequest is the input to one planning call.
type TripRequest struct {
	Destination string      `json:"destination"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Budget      float64     `json:"budget"`
	Travelers   int         `json:"travelers"`
	Preferences Preferences `json:"preferences"`
}

// Validate checks the structural input invariants. These are the only
// conditions that may fail a planning request outright.
func (r TripRequest) Validate() error {
	if r.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if r.Budget <= 0 {
		return fmt.Errorf("budget must be positive, got %.2f", r.Budget)
	}
	if r.Travelers < 1 {
		return fmt.Errorf("travelers must be at least 1, got %d", r.Travelers)
	}
	if !r.EndDate.After(r.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// DurationDays returns the trip length in days using the exclusive
// end−start policy. Nights and itinerary length both use this value.
func (r TripRequest) DurationDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// ActivityBlock is one part of a day (morning, afternoon, or evening).
type ActivityBlock struct {
	Activities    []string `json:"activities"`
	Location      string   `json:"location"`
	EstimatedCost float64  `json:"estimated_cost"`
	DurationHours float64  `json:"duration_hours"`
}

// MealPlan holds the day's meal suggestions and their combined cost.
type MealPlan struct {
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	Dinner    string  `json:"dinner"`
	MealCost  float64 `json:"meal_cost"`
}

// Transportation describes how the traveler moves between locations that day.
type Transportation struct {
	Method string  `json:"method"`
	Cost   float64 `json:"cost"`
	Notes  string  `json:"notes,omitempty"`
}

// ItineraryDay is one day of the structured itinerary. Day indexes are
// 1-based and contiguous.
type ItineraryDay struct {
	Day            int            `json:"day"`
	Date           string         `json:"date"`
	Morning        ActivityBlock  `json:"morning"`
	Afternoon      ActivityBlock  `json:"afternoon"`
	Evening        ActivityBlock  `json:"evening"`
	Meals          MealPlan       `json:"meals"`
	Transportation Transportation `json:"transportation"`
	DailyTotal     float64        `json:"daily_total"`
}

// Subtotal sums the day's block, meal, and transport costs.
func (d ItineraryDay) Subtotal() float64 {
	return d.Morning.EstimatedCost + d.Afternoon.EstimatedCost + d.Evening.EstimatedCost +
		d.Meals.MealCost + d.Transportation.Cost
}

// Reconciled reports whether DailyTotal matches the sum of sub-costs
// within the rounding tolerance.
func (d ItineraryDay) Reconciled() bool {
	return math.Abs(d.DailyTotal-d.Subtotal()) < 0.01
}

// Recommendation is one personalized travel tip.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// TripOverview is the always-derivable summary header of a plan. It is
// assembled purely from upstream data and never depends on the LLM.
type TripOverview struct {
	Destination  string       `json:"destination"`
	DurationDays int          `json:"duration_days"`
	TotalCost    float64      `json:"total_cost"`
	BudgetStatus BudgetStatus `json:"budget_status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// TripPlan is the final aggregate returned by a successful planning call.
type TripPlan struct {
	ID               string              `json:"id"`
	Destination      string              `json:"destination"`
	StartDate        time.Time           `json:"start_date"`
	EndDate          time.Time           `json:"end_date"`
	DurationDays     int                 `json:"duration_days"`
	Travelers        int                 `json:"travelers"`
	Budget           float64             `json:"budget"`
	Itinerary        []ItineraryDay      `json:"itinerary"`
	CostBreakdown    CostBreakdown       `json:"cost_breakdown"`
	BudgetCompliance BudgetCompliance    `json:"budget_compliance"`
	Research         ResearchResult      `json:"research"`
	Summary          string              `json:"summary"`
	Recommendations  []Recommendation    `json:"recommendations"`
	PackingList      map[string][]string `json:"packing_list"`
	Overview         TripOverview        `json:"trip_overview"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
