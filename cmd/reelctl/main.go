// Package main implements reelctl, the operator CLI for the ReelCaster
// scoring engine. It scores sample files offline, lists species profiles,
// and dumps factor explanations without touching the database or providers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reelctl",
		Short:         "ReelCaster scoring engine CLI",
		Long:          "Score environmental samples, inspect species profiles, and dump factor explanations offline.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newScoreCmd(),
		newSpeciesCmd(),
		newExplainCmd(),
		newVersionCmd(),
	)
	return root
}
