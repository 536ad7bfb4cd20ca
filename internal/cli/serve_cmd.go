package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wayfarer-dev/wayfarer/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve exposes the planning pipeline over HTTP: plan trips, list and
fetch stored plans, export PDFs, and get budget estimates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.HTTPAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			orch := app.NewOrchestrator(nil)
			server := httpapi.NewServer(addr, orch, app.Trips, app.Estimator)

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from WAYFARER_HTTP_ADDR)")

	return cmd
}
