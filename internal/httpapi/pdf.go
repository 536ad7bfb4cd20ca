package httpapi

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

// WriteTripPDF renders a trip plan as a printable PDF document.
func WriteTripPDF(w io.Writer, plan *domain.TripPlan) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("Trip to %s", plan.Destination))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%s to %s (%d days, %d traveler(s))",
		plan.StartDate.Format(domain.DateLayout), plan.EndDate.Format(domain.DateLayout),
		plan.DurationDays, plan.Travelers))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Budget: $%.2f    Estimated cost: $%.2f (%s)",
		plan.Budget, plan.CostBreakdown.TotalCost, plan.BudgetCompliance.Status))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, plan.Summary, "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Itinerary")
	pdf.Ln(9)
	for _, day := range plan.Itinerary {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Day %d - %s ($%.2f)", day.Day, day.Date, day.DailyTotal))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf("Morning: %s", strings.Join(day.Morning.Activities, ", ")), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Afternoon: %s", strings.Join(day.Afternoon.Activities, ", ")), "", "L", false)
		pdf.MultiCell(0, 5, fmt.Sprintf("Evening: %s", strings.Join(day.Evening.Activities, ", ")), "", "L", false)
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Cost Breakdown")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	for _, category := range []string{
		domain.CategoryFlights, domain.CategoryAccommodation, domain.CategoryFood,
		domain.CategoryActivities, domain.CategoryTransportation, domain.CategoryMiscellaneous,
	} {
		if amount, ok := plan.CostBreakdown.Breakdown[category]; ok {
			pdf.Cell(0, 6, fmt.Sprintf("%s: $%.2f", category, amount))
			pdf.Ln(6)
		}
	}
	pdf.Ln(4)

	if len(plan.Recommendations) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Recommendations")
		pdf.Ln(9)
		for _, rec := range plan.Recommendations {
			pdf.SetFont("Arial", "B", 10)
			pdf.Cell(0, 6, rec.Title)
			pdf.Ln(6)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, rec.Description, "", "L", false)
			pdf.Ln(2)
		}
	}

	return pdf.Output(w)
}
