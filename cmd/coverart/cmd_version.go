package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		info := coverart.ReadBuildInfo()
		rev := info.Revision
		if info.Modified {
			rev += "-dirty"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "coverart %s (commit %s, %s, %s)\n",
			info.Version, rev, info.Time, info.GoVersion)
	},
}
