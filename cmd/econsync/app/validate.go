package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordicdata/econsync/pkg/dataset"
)

// NewValidateCommand creates the validate command.
func (a *App) NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check the dataset file for structural problems",
		Long: `Validate parses the dataset file and checks that every
non-protected field holds a scalar value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := dataset.Load(a.config.DataFile)
			if err != nil {
				return err
			}

			if err := ds.Validate(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d countries)\n", a.config.DataFile, len(ds))
			return nil
		},
	}
}
