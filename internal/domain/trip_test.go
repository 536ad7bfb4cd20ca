package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRequest() TripRequest {
	return TripRequest{
		Destination: "Paris",
		StartDate:   date(2024, 6, 1),
		EndDate:     date(2024, 6, 5),
		Budget:      2000,
		Travelers:   2,
	}
}

func TestTripRequest_Validate(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestTripRequest_Validate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TripRequest)
	}{
		{"empty destination", func(r *TripRequest) { r.Destination = "" }},
		{"zero budget", func(r *TripRequest) { r.Budget = 0 }},
		{"negative budget", func(r *TripRequest) { r.Budget = -100 }},
		{"zero travelers", func(r *TripRequest) { r.Travelers = 0 }},
		{"end equals start", func(r *TripRequest) { r.EndDate = r.StartDate }},
		{"end before start", func(r *TripRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRequest()
			tc.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestTripRequest_Validate_BadDatesReturnSentinel(t *testing.T) {
	r := validRequest()
	r.EndDate = r.StartDate
	assert.ErrorIs(t, r.Validate(), ErrInvalidDateRange)
}

func TestTripRequest_DurationDays_Exclusive(t *testing.T) {
	r := validRequest()
	assert.Equal(t, 4, r.DurationDays(), "duration is end-start, not inclusive")

	r.EndDate = r.StartDate.AddDate(0, 0, 1)
	assert.Equal(t, 1, r.DurationDays())
}

func TestPreferences_Style(t *testing.T) {
	cases := []struct {
		name  string
		prefs Preferences
		want  TravelStyle
	}{
		{"explicit style", Preferences{TravelStyle: StyleLuxury}, StyleLuxury},
		{"comfort level fallback", Preferences{ComfortLevel: "budget"}, StyleBudget},
		{"style wins over comfort", Preferences{TravelStyle: StyleBudget, ComfortLevel: "luxury"}, StyleBudget},
		{"empty defaults to mid-range", Preferences{}, StyleMidRange},
		{"unknown defaults to mid-range", Preferences{TravelStyle: "first_class"}, StyleMidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.prefs.Style())
		})
	}
}

func TestTravelStyle_Multiplier(t *testing.T) {
	assert.Equal(t, 0.7, StyleBudget.Multiplier())
	assert.Equal(t, 1.0, StyleMidRange.Multiplier())
	assert.Equal(t, 1.8, StyleLuxury.Multiplier())
	assert.Equal(t, 1.0, TravelStyle("unknown").Multiplier())
}

func TestItineraryDay_Reconciled(t *testing.T) {
	day := ItineraryDay{
		Morning:        ActivityBlock{EstimatedCost: 30},
		Afternoon:      ActivityBlock{EstimatedCost: 40},
		Evening:        ActivityBlock{EstimatedCost: 30},
		Meals:          MealPlan{MealCost: 40},
		Transportation: Transportation{Cost: 10},
		DailyTotal:     150,
	}
	assert.True(t, day.Reconciled())

	day.DailyTotal = 160
	assert.False(t, day.Reconciled())
}
