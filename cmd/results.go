package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solenne/whittle/internal/adapters/render/results"
)

func newResultsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show finished games",
		RunE: func(cmd *cobra.Command, _ []string) error {
			finished, err := app.results.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list results: %w", err)
			}

			output, err := results.Render(finished, results.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render results: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}
