package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wayfarer-dev/wayfarer/internal/cli/formatter"
	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// costCategoryOrder fixes the display order of the cost breakdown.
var costCategoryOrder = []string{
	domain.CategoryFlights,
	domain.CategoryAccommodation,
	domain.CategoryFood,
	domain.CategoryActivities,
	domain.CategoryTransportation,
	domain.CategoryMiscellaneous,
}

// RenderTripPlan formats a full trip plan for terminal output.
func RenderTripPlan(plan *domain.TripPlan) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(formatter.Header(fmt.Sprintf("Trip to %s", plan.Destination)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s to %s (%d days, %d travelers)\n",
		formatter.Dim("Dates:"),
		plan.StartDate.Format(domain.DateLayout),
		plan.EndDate.Format(domain.DateLayout),
		plan.DurationDays,
		plan.Travelers)
	fmt.Fprintf(&b, "  %s %s of %s budget  %s\n\n",
		formatter.Dim("Cost: "),
		formatter.Bold(formatter.Money(plan.CostBreakdown.TotalCost)),
		formatter.Money(plan.Budget),
		formatter.BudgetIndicator(plan.BudgetCompliance.Status))

	if plan.Summary != "" {
		b.WriteString(formatter.Header("Summary"))
		b.WriteString("\n  " + plan.Summary + "\n\n")
	}

	b.WriteString(renderResearch(plan.Research))
	b.WriteString(renderItinerary(plan.Itinerary))
	b.WriteString(renderCosts(plan.CostBreakdown, plan.BudgetCompliance))
	b.WriteString(renderRecommendations(plan.Recommendations))
	b.WriteString(renderPackingList(plan.PackingList))

	return b.String()
}

func renderResearch(r domain.ResearchResult) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Destination research"))
	b.WriteString("\n")

	if r.Weather.OK() {
		w := r.Weather.Data
		fmt.Fprintf(&b, "  %s %.0f°C, %s (humidity %d%%)\n",
			formatter.Dim("Weather:"), w.Current.TempC, w.Current.Conditions, w.Current.Humidity)
	} else {
		fmt.Fprintf(&b, "  %s %s\n", formatter.Dim("Weather:"), formatter.Dim("unavailable ("+r.Weather.Err+")"))
	}

	if r.Flights.OK() && len(r.Flights.Data) > 0 {
		best := r.Flights.Data[0]
		for _, f := range r.Flights.Data[1:] {
			if f.Price > 0 && (best.Price <= 0 || f.Price < best.Price) {
				best = f
			}
		}
		fmt.Fprintf(&b, "  %s %s %s from %s\n",
			formatter.Dim("Flights:"), best.Airline, best.FlightNumber, formatter.Money(best.Price))
	} else if !r.Flights.OK() {
		fmt.Fprintf(&b, "  %s %s\n", formatter.Dim("Flights:"), formatter.Dim("unavailable ("+r.Flights.Err+")"))
	}

	if r.Hotels.OK() && len(r.Hotels.Data) > 0 {
		best := r.Hotels.Data[0]
		for _, h := range r.Hotels.Data[1:] {
			if h.PricePerNight > 0 && (best.PricePerNight <= 0 || h.PricePerNight < best.PricePerNight) {
				best = h
			}
		}
		fmt.Fprintf(&b, "  %s %s from %s/night\n",
			formatter.Dim("Hotels: "), best.Name, formatter.Money(best.PricePerNight))
	} else if !r.Hotels.OK() {
		fmt.Fprintf(&b, "  %s %s\n", formatter.Dim("Hotels: "), formatter.Dim("unavailable ("+r.Hotels.Err+")"))
	}

	if r.DestinationInfo.OK() && r.DestinationInfo.Data != "" {
		fmt.Fprintf(&b, "\n  %s\n", wrapIndented(r.DestinationInfo.Data, 2))
	}

	b.WriteString("\n")
	return b.String()
}

func renderItinerary(days []domain.ItineraryDay) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Itinerary"))
	b.WriteString("\n")

	for _, day := range days {
		fmt.Fprintf(&b, "  %s %s\n",
			formatter.Bold(fmt.Sprintf("Day %d", day.Day)),
			formatter.Dim(day.Date))
		writeBlock(&b, "Morning", day.Morning)
		writeBlock(&b, "Afternoon", day.Afternoon)
		writeBlock(&b, "Evening", day.Evening)
		fmt.Fprintf(&b, "    %s %s, %s, %s (%s)\n",
			formatter.Dim("Meals:"),
			day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner,
			formatter.Money(day.Meals.MealCost))
		fmt.Fprintf(&b, "    %s %s (%s)\n",
			formatter.Dim("Transport:"),
			day.Transportation.Method,
			formatter.Money(day.Transportation.Cost))
		fmt.Fprintf(&b, "    %s %s\n\n",
			formatter.Dim("Daily total:"),
			formatter.Bold(formatter.Money(day.DailyTotal)))
	}
	return b.String()
}

func writeBlock(b *strings.Builder, label string, block domain.ActivityBlock) {
	if len(block.Activities) == 0 {
		return
	}
	fmt.Fprintf(b, "    %s %s", formatter.Dim(label+":"), strings.Join(block.Activities, ", "))
	if block.Location != "" {
		fmt.Fprintf(b, " %s", formatter.Dim("@ "+block.Location))
	}
	fmt.Fprintf(b, " (%s)\n", formatter.Money(block.EstimatedCost))
}

func renderCosts(costs domain.CostBreakdown, compliance domain.BudgetCompliance) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Cost breakdown"))
	b.WriteString("\n")

	for _, category := range costCategoryOrder {
		amount, ok := costs.Breakdown[category]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %-16s %10s\n", category, formatter.Money(amount))
	}
	// Any category outside the known order, alphabetically.
	var extra []string
	for category := range costs.Breakdown {
		if !knownCategory(category) {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	for _, category := range extra {
		fmt.Fprintf(&b, "  %-16s %10s\n", category, formatter.Money(costs.Breakdown[category]))
	}

	fmt.Fprintf(&b, "  %-16s %10s\n", formatter.Bold("total"), formatter.Bold(formatter.Money(costs.TotalCost)))
	fmt.Fprintf(&b, "  %s %s per person, %s per day\n",
		formatter.Dim("Rates:"),
		formatter.Money(costs.CostPerPerson),
		formatter.Money(costs.CostPerDay))

	if compliance.WithinBudget {
		fmt.Fprintf(&b, "  %s %s remaining (%.1f%% of budget used)\n\n",
			formatter.Dim("Budget:"),
			formatter.Money(compliance.Remaining),
			compliance.CompliancePercentage)
	} else {
		fmt.Fprintf(&b, "  %s %s over budget (%.1f%% of budget)\n\n",
			formatter.Dim("Budget:"),
			formatter.Money(-compliance.Remaining),
			compliance.CompliancePercentage)
	}
	return b.String()
}

func knownCategory(category string) bool {
	for _, c := range costCategoryOrder {
		if c == category {
			return true
		}
	}
	return false
}

func renderRecommendations(recs []domain.Recommendation) string {
	if len(recs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Header("Recommendations"))
	b.WriteString("\n")
	for _, rec := range recs {
		fmt.Fprintf(&b, "  %s %s\n    %s\n",
			formatter.Bold("•"),
			formatter.Bold(rec.Title),
			rec.Description)
	}
	b.WriteString("\n")
	return b.String()
}

func renderPackingList(packing map[string][]string) string {
	if len(packing) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Header("Packing list"))
	b.WriteString("\n")

	categories := make([]string, 0, len(packing))
	for category := range packing {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(&b, "  %s %s\n",
			formatter.Bold(category+":"),
			strings.Join(packing[category], ", "))
	}
	b.WriteString("\n")
	return b.String()
}

// wrapIndented is a light word wrap for long prose sections.
func wrapIndented(text string, indent int) string {
	const width = 78
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	pad := strings.Repeat(" ", indent)
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width-indent {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n"+pad)
}
