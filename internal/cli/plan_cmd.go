package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wayfarer-dev/wayfarer/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		destination string
		startDate   string
		endDate     string
		budget      float64
		travelers   int
		style       string
		interests   []string
		requests    string
		noSave      bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip end to end",
		Long: `Plan researches the destination, builds a day-by-day itinerary with
costs and budget compliance, and writes a summary with recommendations
and a packing list. Works fully offline; set WAYFARER_LLM_ENABLED=true
for AI-generated content.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := isatty.IsTerminal(os.Stdout.Fd()) && destination == ""
			if interactive {
				if err := runPlanWizard(&destination, &startDate, &endDate, &budget, &travelers, &style, &interests); err != nil {
					return err
				}
			}

			req, err := buildTripRequest(destination, startDate, endDate, budget, travelers, style, interests, requests)
			if err != nil {
				return err
			}

			plan, err := runPlanWithProgress(cmd, app, req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), RenderTripPlan(plan))

			if !noSave && app.Trips != nil {
				if err := app.Trips.Save(cmd.Context(), plan); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not save trip: %v\n", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "destination", "d", "", "destination city or region")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "total trip budget in USD")
	cmd.Flags().IntVarP(&travelers, "travelers", "t", 1, "number of travelers")
	cmd.Flags().StringVar(&style, "style", "mid_range", "travel style: budget, mid_range, or luxury")
	cmd.Flags().StringSliceVar(&interests, "interests", nil, "comma-separated interests, e.g. culture,food")
	cmd.Flags().StringVar(&requests, "requests", "", "special requests in free text")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the plan")

	return cmd
}

// runPlanWizard collects trip parameters interactively when the user
// gave no flags.
func runPlanWizard(destination, startDate, endDate *string, budget *float64, travelers *int, style *string, interests *[]string) error {
	var (
		budgetStr    string
		travelersStr = strconv.Itoa(*travelers)
		interestsStr string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Destination").
				Placeholder("Paris").
				Value(destination).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("destination is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Placeholder(time.Now().AddDate(0, 1, 0).Format(domain.DateLayout)).
				Value(startDate).
				Validate(validateDate),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Value(endDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Budget (USD)").
				Placeholder("2000").
				Value(&budgetStr).
				Validate(validatePositiveNumber),
			huh.NewInput().
				Title("Travelers").
				Value(&travelersStr).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Travel style").
				Options(
					huh.NewOption("Budget", string(domain.StyleBudget)),
					huh.NewOption("Mid-range", string(domain.StyleMidRange)),
					huh.NewOption("Luxury", string(domain.StyleLuxury)),
				).
				Value(style),
			huh.NewInput().
				Title("Interests (comma separated, optional)").
				Placeholder("culture, food").
				Value(&interestsStr),
		),
	).WithTheme(wayfarerHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	*budget, _ = strconv.ParseFloat(budgetStr, 64)
	*travelers, _ = strconv.Atoi(travelersStr)
	for _, raw := range strings.Split(interestsStr, ",") {
		if v := strings.TrimSpace(raw); v != "" {
			*interests = append(*interests, v)
		}
	}
	return nil
}

func buildTripRequest(destination, startDate, endDate string, budget float64, travelers int, style string, interests []string, requests string) (domain.TripRequest, error) {
	start, err := time.Parse(domain.DateLayout, startDate)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", startDate)
	}
	end, err := time.Parse(domain.DateLayout, endDate)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", endDate)
	}

	return domain.TripRequest{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      budget,
		Travelers:   travelers,
		Preferences: domain.Preferences{
			Interests:       interests,
			TravelStyle:     domain.TravelStyle(style),
			SpecialRequests: requests,
		},
	}, nil
}

// runPlanWithProgress executes the pipeline behind a progress display
// when attached to a terminal, or plainly otherwise.
func runPlanWithProgress(cmd *cobra.Command, app *App, req domain.TripRequest) (*domain.TripPlan, error) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return runPlanTUI(cmd.Context(), app, req)
	}

	orch := app.NewOrchestrator(func(stage domain.PlanStage) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s...\n", stageLabel(stage))
	})
	return orch.PlanTrip(cmd.Context(), req)
}

func stageLabel(stage domain.PlanStage) string {
	switch stage {
	case domain.StageResearching:
		return "Researching destination"
	case domain.StagePlanning:
		return "Building itinerary"
	case domain.StageSummarizing:
		return "Writing summary"
	case domain.StageCompleted:
		return "Done"
	case domain.StageFailed:
		return "Failed"
	default:
		return string(stage)
	}
}

func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return fmt.Errorf("expected a positive whole number")
	}
	return nil
}
