package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcaster/internal/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			build := config.NewBuildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "reelctl %s (commit %s, built %s)\n",
				build.Version, build.Commit, build.BuildTime)
		},
	}
}
