package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/fcsr-dev/fcsr/internal/checker"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func newGraphCommand(opts *rootOptions) *cobra.Command {
	var (
		output     string
		dependents bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the internal dependency graph",
		Long: `Display the validated internal dependencies of every workspace package,
root included. With --dependents, display the packages depending on each
package instead.`,
		Example: `  # Show the dependency graph
  fcsr graph

  # Show who depends on each package, as JSON
  fcsr graph --dependents -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unsupported output format %q (want %s or %s)", output, outputTable, outputJSON)
			}

			res, err := runChecker(cmd, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case output == outputJSON && dependents:
				return renderJSON(w, res.Dependents)
			case output == outputJSON:
				return renderJSON(w, res.Graph)
			default:
				renderGraphTable(w, res, dependents)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format (table|json)")
	cmd.Flags().BoolVar(&dependents, "dependents", false, "Show dependents instead of dependencies")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{outputTable, outputJSON}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func renderGraphTable(w io.Writer, res checker.Result, dependents bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	edges := "Dependencies"
	if dependents {
		edges = "Dependents"
	}
	t.AppendHeader(table.Row{"Package", "Version", edges})

	for _, name := range res.Graph.Names() {
		related := res.Graph.Dependencies(name)
		if dependents {
			related = res.Dependents.Dependents(name)
		}
		t.AppendRow(table.Row{name, res.Graph.Nodes[name].Package.Manifest.Version, strings.Join(related, ", ")})
	}

	t.Render()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
