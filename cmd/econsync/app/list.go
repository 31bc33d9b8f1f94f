package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nordicdata/econsync/internal/cmd/table"
	"github.com/nordicdata/econsync/pkg/dataset"
)

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Short:   "Show the stored dataset as a table",
		Long: `List renders the stored dataset without touching the network.
Columns are the union of non-protected fields present in the data.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := dataset.Load(a.config.DataFile)
			if err != nil {
				return err
			}

			printDataset(cmd.OutOrStdout(), ds)
			return nil
		},
	}
}

// printDataset renders one row per country, fields as columns.
func printDataset(out io.Writer, ds dataset.Dataset) {
	fields := datasetFields(ds)
	titler := cases.Title(language.English)

	headers := append([]string{"Country"}, fields...)
	alignment := make([]table.Align, len(headers))
	for i := range alignment {
		if i > 0 {
			alignment[i] = table.AlignRight
		}
	}

	rows := make([][]string, 0, len(ds))
	for _, id := range ds.Countries() {
		row := []string{titler.String(id)}
		for _, field := range fields {
			value, ok := ds[id][field]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, table.FormatValue(value))
		}
		rows = append(rows, row)
	}

	fmt.Fprintln(out)
	table.Render(out, table.Data{Headers: headers, Rows: rows, ColumnAlignment: alignment})
	fmt.Fprintf(out, "\n  %d country/countries.\n", len(ds))
}

// datasetFields returns the sorted union of non-protected field names.
func datasetFields(ds dataset.Dataset) []string {
	seen := make(map[string]struct{})
	for _, rec := range ds {
		for field := range rec {
			if dataset.Protected(field) {
				continue
			}
			seen[field] = struct{}{}
		}
	}

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
