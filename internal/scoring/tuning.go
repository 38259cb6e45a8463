package scoring

import "reelcaster/internal/types"

// TuningFile is the optional deployment-specific override set, loaded from a
// yaml file by internal/config. It exists because the shipped curve
// constants are defaults shaped by the documented model, not empirically
// validated values; operators re-fit them against catch-outcome data without
// code changes.
type TuningFile struct {
	Species map[string]ProfileOverride `yaml:"species"`
}

// ProfileOverride selectively replaces parts of a species profile. Nil
// fields leave the default untouched; a non-nil Weights map replaces the
// whole weight table (partial weight edits would silently break the
// sum-to-one invariant).
type ProfileOverride struct {
	Weights     map[string]float64 `yaml:"weights,omitempty"`
	Seasonality *SeasonalityConfig `yaml:"seasonality,omitempty"`
	Current     *CurrentBand       `yaml:"current,omitempty"`
	Range       *RangeConfig       `yaml:"range,omitempty"`
	WaterTemp   *TempBand          `yaml:"water_temp,omitempty"`
	SeaState    *SeaStateConfig    `yaml:"sea_state,omitempty"`
}

func applyTuning(profiles map[types.Species]Profile, t TuningFile) {
	for raw, ov := range t.Species {
		sp := types.NormalizeSpecies(raw)
		p, ok := profiles[sp]
		if !ok {
			continue
		}

		if ov.Weights != nil {
			w := make(map[types.FactorKey]float64, len(ov.Weights))
			for k, v := range ov.Weights {
				w[types.FactorKey(k)] = v
			}
			p.Weights = w
		}
		if ov.Seasonality != nil {
			p.Seasonality = *ov.Seasonality
		}
		if ov.Current != nil {
			p.Current = *ov.Current
		}
		if ov.Range != nil {
			p.Range = *ov.Range
		}
		if ov.WaterTemp != nil {
			p.WaterTemp = *ov.WaterTemp
		}
		if ov.SeaState != nil {
			p.SeaState = *ov.SeaState
		}

		profiles[sp] = p
	}
}
