package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/avairo/tplcheck/internal/catalog"
	"github.com/avairo/tplcheck/internal/check"
	"github.com/avairo/tplcheck/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loadEntries(app)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Fprintln(app.Out, "No entries found.")
				return nil
			}

			headers := []string{"ID", "Name", "Icon"}
			rows := make([][]string, 0, len(entries))
			for i, e := range entries {
				rows = append(rows, []string{
					e.DisplayID(i),
					formatter.Bold(e.DisplayName()),
					formatter.Dim(e.Icon),
				})
			}

			fmt.Fprint(app.Out, formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show one catalog entry by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := resolveEntry(app, args[0])
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(entry.Raw, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding entry '%s': %w", args[0], err)
			}

			fmt.Fprintf(app.Out, "%s  %s\n\n", formatter.Bold(entry.DisplayName()), formatter.Dim(entry.ID))
			fmt.Fprintln(app.Out, string(data))
			return nil
		},
	}
}

// loadEntries loads the catalog for the read-only commands, applying the
// same format contract as the validation pipeline.
func loadEntries(app *App) ([]catalog.Entry, error) {
	doc, err := catalog.LoadDocument(app.Paths.Catalog)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if ok, reason := check.Format(doc); !ok {
		return nil, fmt.Errorf("invalid catalog: %s", reason)
	}
	return catalog.ParseEntries(doc.([]any)), nil
}

// resolveEntry matches an entry by id or display name, case-insensitive.
func resolveEntry(app *App, ref string) (*catalog.Entry, error) {
	input := strings.TrimSpace(ref)
	if input == "" {
		return nil, fmt.Errorf("entry '%s' not found: empty reference", ref)
	}

	entries, err := loadEntries(app)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		if strings.EqualFold(e.ID, input) || strings.EqualFold(e.Name, input) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("entry '%s' not found", ref)
}
