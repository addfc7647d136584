package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, overridden at release time via
// -ldflags "-X github.com/cosmoos/voicegen/internal/cmd.Version=v1.2.3 ...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "voicegen %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
