package cmd

import (
	"fmt"

	"github.com/egoavara/launchkit/internal/config"
	"github.com/egoavara/launchkit/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("launchkit %s\n", version.Version)
		if version.GitCommit != "" {
			fmt.Printf("  commit: %s\n", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Printf("  built:  %s\n", version.BuildDate)
		}
		fmt.Printf("  record: %s\n", config.RecordPath())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
