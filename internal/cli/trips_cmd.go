package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wayfarer-dev/wayfarer/internal/cli/formatter"
	"github.com/wayfarer-dev/wayfarer/internal/httpapi"
)

func newTripsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Manage stored trip plans",
	}

	cmd.AddCommand(
		newTripsListCmd(app),
		newTripsShowCmd(app),
		newTripsDeleteCmd(app),
		newTripsExportCmd(app),
	)

	return cmd
}

func newTripsListCmd(app *App) *cobra.Command {
	var (
		destination string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(cmd.Context(), destination, limit)
			if err != nil {
				return fmt.Errorf("listing trips: %w", err)
			}
			if len(trips) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No trips stored yet. Run 'wayfarer plan' to create one."))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Stored trips"))
			for _, t := range trips {
				fmt.Fprintf(out, "  %s  %s  %s to %s  %s  %s\n",
					formatter.Dim(shortID(t.ID)),
					formatter.Bold(t.Destination),
					t.StartDate, t.EndDate,
					formatter.Money(t.TotalCost),
					formatter.BudgetIndicator(t.BudgetStatus))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "filter by destination")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum number of trips to list")

	return cmd
}

func newTripsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trip-id>",
		Short: "Show a stored trip plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Trips.GetByID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("loading trip %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderTripPlan(plan))
			return nil
		},
	}
}

func newTripsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trip-id>",
		Short: "Delete a stored trip plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Trips.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("deleting trip %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted trip %s\n", args[0])
			return nil
		},
	}
}

func newTripsExportCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <trip-id>",
		Short: "Export a stored trip plan as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Trips.GetByID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("loading trip %s: %w", args[0], err)
			}

			if output == "" {
				output = fmt.Sprintf("trip-%s.pdf", shortID(args[0]))
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()

			if err := httpapi.WriteTripPDF(f, plan); err != nil {
				return fmt.Errorf("writing PDF: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", plan.Destination, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default trip-<id>.pdf)")

	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
