package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"reelcaster/internal/explain"
	"reelcaster/internal/types"
)

func newSpeciesCmd() *cobra.Command {
	var tuningFlag string

	cmd := &cobra.Command{
		Use:   "species",
		Short: "List species profiles and factor weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine(tuningFlag)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, sp := range types.KnownSpecies() {
				p := engine.Profile(sp)
				fmt.Fprintf(w, "%s (%s)\n", sp, p.Version)
				printWeights(w, p.Weights)
				fmt.Fprintln(w)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tuningFlag, "tuning", "", "optional species tuning overrides file")
	return cmd
}

func printWeights(w io.Writer, weights map[types.FactorKey]float64) {
	keys := make([]types.FactorKey, 0, len(weights))
	for key := range weights {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if weights[keys[i]] != weights[keys[j]] {
			return weights[keys[i]] > weights[keys[j]]
		}
		return keys[i] < keys[j]
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(tw, "  %s\t%.2f\n", key, weights[key])
	}
	tw.Flush()
}

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <species>",
		Short: "Dump the factor explanations for a species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			species := types.NormalizeSpecies(args[0])
			table := explain.SpeciesExplanations(species)

			keys := make([]types.FactorKey, 0, len(table))
			for key := range table {
				keys = append(keys, key)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n\n", species)
			for _, key := range keys {
				exp := table[key]
				fmt.Fprintf(w, "%s: %s\n", key, exp.Title)
				fmt.Fprintf(w, "  %s\n", exp.Summary)
				fmt.Fprintf(w, "  why it matters: %s\n\n", exp.WhyItMatters)
			}
			return nil
		},
	}
	return cmd
}
