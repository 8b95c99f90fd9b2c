package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/fcsr-dev/fcsr/internal/checker"
	"github.com/fcsr-dev/fcsr/internal/config"
	"github.com/fcsr-dev/fcsr/internal/workspace"
)

// runChecker loads the workspace and its config, runs the checks and, when
// --metrics-file is set, writes the metrics.
func runChecker(cmd *cobra.Command, opts *rootOptions) (checker.Result, error) {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.cwd, cmd.Flags())
	if err != nil {
		return checker.Result{}, err
	}
	ws, err := workspace.Load(ctx, opts.cwd)
	if err != nil {
		return checker.Result{}, fmt.Errorf("failed to load workspace: %w", err)
	}

	res, err := checker.NewDefault().Check(ctx, checker.Input{Workspace: ws, Config: *cfg})

	if opts.metricsFile != "" {
		if werr := checker.WriteMetrics(opts.metricsFile); werr != nil {
			log.FromContext(ctx).Error(werr, "unable to write metrics")
		}
	}
	return res, err
}
