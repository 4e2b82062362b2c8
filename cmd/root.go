package cmd

import (
	"fmt"
	"os"

	"github.com/egoavara/launchkit/internal/debuglog"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:           "launchkit",
		Short:         "Toolkit for building search-style launcher plugins",
		SilenceErrors: true,
		Long: `launchkit is a toolkit for building search-style launcher plugins:
it formats result lists for the host application, packages reusable
text snippets into a distributable archive, and runs a time-gated
self-update check against a release feed.

Commands:
  check    Check the release feed for a newer plugin version
  package  Build a snippet archive from a collection file
  browse   Browse a snippet collection interactively
  config   Manage configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return debuglog.Init(verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debuglog.Close()
		},
	}
)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(packageCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
}
