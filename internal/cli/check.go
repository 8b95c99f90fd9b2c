package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fcsr-dev/fcsr/internal/checker"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check internal dependencies and release groups",
		Long: `Check that every internal dependency range is satisfied by the current
version of the package it names, and that the fixed, linked and ignore
options of .changeset/config.json are consistent.

Exits non-zero when a dependency range cannot be honoured, or on any
warning with --strict.`,
		Example: `  # Check the workspace in the current directory
  fcsr check

  # Fail on group warnings too
  fcsr check --strict --cwd ./monorepo`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := runChecker(cmd, opts)
			if err != nil {
				return err
			}

			st := newStyles(cmd.OutOrStdout())
			for _, w := range res.Report.Warnings {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), st.warning(w))
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), st.summary(res))

			switch {
			case !res.Valid():
				return checker.ErrInconsistentDependencies
			case strict && !res.Report.Empty():
				return fmt.Errorf("%w: %d warning(s)", checker.ErrWarnings, res.Report.Len())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on any warning")
	return cmd
}
