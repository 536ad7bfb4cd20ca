package cli

import (
	"github.com/spf13/cobra"

	"github.com/wayfarer-dev/wayfarer/internal/config"
	"github.com/wayfarer-dev/wayfarer/internal/costing"
	"github.com/wayfarer-dev/wayfarer/internal/repository"
	"github.com/wayfarer-dev/wayfarer/internal/service"
)

// App holds the wired services the CLI commands run against. Orchestrators
// are built per invocation so each command can attach its own stage
// observer (the plan command's progress display needs one).
type App struct {
	NewOrchestrator func(onStage service.StageObserver) service.Orchestrator
	Trips           repository.TripRepo
	Estimator       *costing.Model
	Config          config.Config
}

// NewRootCmd creates the top-level "wayfarer" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wayfarer",
		Short:         "AI-assisted travel planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newTripsCmd(app),
		newEstimateCmd(app),
		newServeCmd(app),
	)

	return root
}
