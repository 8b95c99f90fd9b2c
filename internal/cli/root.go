// Package cli provides the fcsr command-line interface.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/fcsr-dev/fcsr/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	cwd         string
	verbose     bool
	metricsFile string
	zap         zap.Options
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "fcsr",
		Short: "fcsr - release tooling for JavaScript monorepos",
		Long: `fcsr manages versioning and changelogs for multi-package repositories.

It reads the workspace packages and .changeset/config.json, checks that every
internal dependency range can be honoured and that the fixed, linked and
ignore options are consistent.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			if opts.verbose {
				opts.zap.Development = true
			}
			logger := zap.New(zap.UseFlagOptions(&opts.zap), zap.WriteTo(cmd.ErrOrStderr()))
			log.SetLogger(logger)
			cmd.SetContext(logr.NewContext(cmd.Context(), logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cwd, "cwd", ".", "Workspace root directory")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write metrics in textfile collector format to this path")
	flags.Bool(config.FlagBumpVersionsWithWorkspaceProtocolOnly, false,
		"Only treat dependencies declared with the workspace: protocol as internal")

	zapFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	opts.zap.BindFlags(zapFlags)
	flags.AddGoFlagSet(zapFlags)

	rootCmd.AddCommand(newVersionCommand(Version))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newGraphCommand(opts))
	rootCmd.AddCommand(newInitCommand(opts))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
