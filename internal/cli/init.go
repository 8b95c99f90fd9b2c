package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fcsr-dev/fcsr/internal/config"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default .changeset/config.json",
		Long: `Create .changeset/config.json with the default options.

Fails when the file already exists, or when a version 1 .changeset/config.js
is present.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.Init(opts.cwd)
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(opts.cwd, path)
			if err != nil {
				rel = path
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", rel)
			return nil
		},
	}
}
