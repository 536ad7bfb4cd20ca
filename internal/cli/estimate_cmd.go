package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wayfarer-dev/wayfarer/internal/cli/formatter"
	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

func newEstimateCmd(app *App) *cobra.Command {
	var (
		days      int
		travelers int
		style     string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a trip budget before planning",
		Long: `Estimate projects a likely trip cost from baseline daily rates and the
chosen travel style, without researching a destination.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("days must be at least 1, got %d", days)
			}
			if travelers < 1 {
				return fmt.Errorf("travelers must be at least 1, got %d", travelers)
			}

			est := app.Estimator.EstimateBudget(days, travelers, domain.TravelStyle(style))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(fmt.Sprintf("Budget estimate (%d days, %d travelers, %s)", days, travelers, est.Style)))

			categories := make([]string, 0, len(est.Breakdown))
			for category := range est.Breakdown {
				categories = append(categories, category)
			}
			sort.Strings(categories)
			for _, category := range categories {
				fmt.Fprintf(out, "  %-16s %10s\n", category, formatter.Money(est.Breakdown[category]))
			}

			fmt.Fprintf(out, "  %-16s %10s\n", formatter.Bold("total"), formatter.Bold(formatter.Money(est.EstimatedCost)))
			fmt.Fprintf(out, "  %s %s per person, %s per day\n",
				formatter.Dim("Rates:"),
				formatter.Money(est.CostPerPerson),
				formatter.Money(est.CostPerDay))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "trip length in days")
	cmd.Flags().IntVarP(&travelers, "travelers", "t", 1, "number of travelers")
	cmd.Flags().StringVar(&style, "style", "mid_range", "travel style: budget, mid_range, or luxury")

	return cmd
}
