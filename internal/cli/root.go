package cli

import (
	"io"

	"github.com/avairo/tplcheck/internal/catalog"
	"github.com/avairo/tplcheck/internal/pipeline"
	"github.com/spf13/cobra"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	Paths    catalog.Paths
	Out      io.Writer
	Observer pipeline.Observer
}

// NewRootCmd creates the top-level "tplcheck" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tplcheck",
		Short:         "Validate the template catalog against its schema and icon set",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newValidateCmd(app),
		newListCmd(app),
		newShowCmd(app),
	)

	return root
}
