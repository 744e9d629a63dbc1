package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/infragpt/infragpt/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "infragpt %s (commit %s, built %s)\n",
			build.Version, build.Commit, build.BuildDate)
	},
}

func init() {
	versionCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(versionCmd)
}
