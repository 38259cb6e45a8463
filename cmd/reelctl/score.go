package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"reelcaster/internal/config"
	"reelcaster/internal/explain"
	"reelcaster/internal/scoring"
	"reelcaster/internal/types"
)

// scoreInput is the JSON document accepted by `reelctl score`.
type scoreInput struct {
	Sample  types.EnvironmentalSample `json:"sample"`
	Tide    *types.TideSnapshot       `json:"tide,omitempty"`
	Context types.AlgorithmContext    `json:"context"`
}

func newScoreCmd() *cobra.Command {
	var (
		speciesFlag   string
		inputFlag     string
		algorithmFlag string
		tuningFlag    string
		jsonFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a sample file for a species",
		Long:  "Reads a JSON sample document (see --input) and prints the factor breakdown. Use --input - to read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine(tuningFlag)
			if err != nil {
				return err
			}

			in, err := readScoreInput(inputFlag)
			if err != nil {
				return err
			}
			if in.Sample.Timestamp.IsZero() {
				return fmt.Errorf("sample.timestamp is required")
			}

			species := types.NormalizeSpecies(speciesFlag)
			scoreIn := scoring.Input{Sample: in.Sample, Tide: in.Tide, Context: in.Context}

			var result *types.ScoreResult
			switch algorithmFlag {
			case "":
				result = engine.Score(scoreIn, species)
			case "v1", "v2":
				result = engine.ScoreVersion(scoreIn, species, types.AlgorithmVersion(algorithmFlag))
			default:
				return fmt.Errorf("invalid --algorithm %q (want v1 or v2)", algorithmFlag)
			}

			if jsonFlag {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printBreakdown(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&speciesFlag, "species", "", "target species (required)")
	cmd.Flags().StringVar(&inputFlag, "input", "-", "path to the sample JSON document, or - for stdin")
	cmd.Flags().StringVar(&algorithmFlag, "algorithm", "", "force algorithm version (v1 or v2)")
	cmd.Flags().StringVar(&tuningFlag, "tuning", "", "optional species tuning overrides file")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "emit the raw ScoreResult as JSON")
	_ = cmd.MarkFlagRequired("species")

	return cmd
}

func buildEngine(tuningPath string) (*scoring.Engine, error) {
	tuning, err := config.LoadTuning(config.ScoringConfig{TuningFile: tuningPath})
	if err != nil {
		return nil, fmt.Errorf("loading tuning file: %w", err)
	}
	return scoring.NewEngine(
		scoring.WithTuning(tuning),
		scoring.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
	), nil
}

func readScoreInput(path string) (*scoreInput, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in scoreInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	return &in, nil
}

func printBreakdown(w io.Writer, result *types.ScoreResult) {
	label := explain.LabelForScore(result.Total)
	fmt.Fprintf(w, "%s @ %s\n", result.Species, result.Timestamp.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(w, "total: %.1f/10 (%s)  algorithm: %s  in season: %v  safe: %v\n\n",
		result.Total, label.Label, result.AlgorithmVersion, result.IsInSeason, result.IsSafe)

	// Heaviest factors first; ties break alphabetically for stable output.
	keys := make([]types.FactorKey, 0, len(result.Factors))
	for key := range result.Factors {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		wi, wj := result.Factors[keys[i]].Weight, result.Factors[keys[j]].Weight
		if wi != wj {
			return wi > wj
		}
		return keys[i] < keys[j]
	})

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FACTOR\tWEIGHT\tSCORE\tVALUE")
	for _, key := range keys {
		f := result.Factors[key]
		fmt.Fprintf(tw, "%s\t%.2f\t%.1f\t%s\n", key, f.Weight, f.Score, f.Value)
	}
	tw.Flush()

	if len(result.SafetyWarnings) > 0 {
		fmt.Fprintln(w, "\nwarnings:")
		for _, warning := range result.SafetyWarnings {
			fmt.Fprintf(w, "  ! %s\n", warning)
		}
	}
	if len(result.StrategyAdvice) > 0 {
		fmt.Fprintln(w, "\nadvice:")
		for _, line := range result.StrategyAdvice {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}
}
