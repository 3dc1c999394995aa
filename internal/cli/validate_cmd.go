package cli

import (
	"github.com/avairo/tplcheck/internal/cli/formatter"
	"github.com/avairo/tplcheck/internal/pipeline"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run the catalog validation pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := formatter.NewConsoleReporter(app.Out)
			runner := pipeline.NewRunner(app.Paths, reporter, app.Observer)
			return runner.Run(cmd.Context())
		},
	}
}
