package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nordicdata/econsync/internal/cmd/table"
	"github.com/nordicdata/econsync/pkg/dataset"
	"github.com/nordicdata/econsync/pkg/differ"
	"github.com/nordicdata/econsync/pkg/logging"
	"github.com/nordicdata/econsync/pkg/reconcile"
)

// UpdateFlags holds the update command's flag values.
type UpdateFlags struct {
	Apply     bool
	Countries string
}

// NewUpdateCommand creates the update command.
func (a *App) NewUpdateCommand() *cobra.Command {
	flags := &UpdateFlags{}

	cmd := &cobra.Command{
		Use:     "update",
		GroupID: "core",
		Short:   "Update the dataset from the World Bank API",
		Long: `Update fetches current indicator values from the World Bank API,
compares them field-by-field against the stored dataset, and prints the
detected changes as a table.

The default mode is a dry-run: nothing is written. Pass --apply to merge
the fetched values and write the dataset back to disk. Protected fields
(revenue, expenditure, top_exports) are never overwritten.`,
		Example: `  econsync update                           # Preview changes for all countries
  econsync update --apply                   # Write changes to disk
  econsync update --countries norway,sweden # Limit to a subset
  econsync update --apply -f data/economics.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.ExecuteUpdate(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().BoolVar(&flags.Apply, "apply", false, "write changes to disk (default is dry-run)")
	cmd.Flags().StringVar(&flags.Countries, "countries", "", "comma-separated list of country IDs to update (default: all)")

	return cmd
}

// ExecuteUpdate orchestrates the complete update process: load, fetch,
// diff, and (in apply mode) merge and save.
func (a *App) ExecuteUpdate(ctx context.Context, out io.Writer, flags *UpdateFlags) error {
	log := a.Logger()
	ctx = logging.WithLogger(ctx, log)

	mode := "dry-run"
	if flags.Apply {
		mode = "apply"
	}

	ds, err := dataset.Load(a.config.DataFile)
	if err != nil {
		return err
	}

	countryIDs := splitCountries(flags.Countries)
	targets := len(countryIDs)
	if targets == 0 {
		targets = len(ds)
	}

	log.Info().
		Str("mode", mode).
		Str("file", a.config.DataFile).
		Int("countries", targets).
		Msg("fetching indicator data")

	client, err := a.Source()
	if err != nil {
		return err
	}

	fetched, err := client.FetchAll(ctx, countryIDs)
	if err != nil {
		return err
	}

	changeset := differ.New().Changes(ds, fetched)
	printChangeset(out, changeset)

	if changeset.IsEmpty() {
		return nil
	}

	if !flags.Apply {
		fmt.Fprintf(out, "\n  Dry-run complete. Re-run with --apply to write changes.\n")
		return nil
	}

	reconcile.Apply(ds, fetched)
	if err := ds.Save(a.config.DataFile); err != nil {
		return err
	}

	log.Info().Int("changes", changeset.Summary.FieldsChanged).Msg("dataset updated")
	fmt.Fprintf(out, "\n  ✓ Written to %s\n", a.config.DataFile)

	return nil
}

// printChangeset renders the change table or a "no changes" notice.
func printChangeset(out io.Writer, cs *differ.Changeset) {
	if cs.IsEmpty() {
		fmt.Fprintln(out, "\nNo changes detected.")
		return
	}

	fmt.Fprintln(out)
	table.Render(out, table.ChangesToData(cs.Changes))
	fmt.Fprintf(out, "\n  %d field(s) changed across %d country/countries.\n",
		cs.Summary.FieldsChanged, cs.Summary.CountriesChanged)
}

// splitCountries parses the --countries flag into trimmed identifiers.
// An empty flag yields nil, meaning all known countries.
func splitCountries(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
