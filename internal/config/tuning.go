package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"reelcaster/internal/scoring"
)

// LoadTuning reads the optional species tuning file referenced by
// ScoringConfig.TuningFile. An empty path returns a zero TuningFile, meaning
// the engine ships with its built-in profiles. A configured path that cannot
// be read or parsed is a startup failure: silently ignoring a broken tuning
// file would score with defaults the operator believes are overridden.
func LoadTuning(cfg ScoringConfig) (scoring.TuningFile, error) {
	var tuning scoring.TuningFile
	if cfg.TuningFile == "" {
		return tuning, nil
	}

	data, err := os.ReadFile(cfg.TuningFile)
	if err != nil {
		return tuning, &ConfigError{
			Type:    ErrTuning,
			Message: "failed to read species tuning file " + cfg.TuningFile,
			Err:     err,
		}
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, &ConfigError{
			Type:    ErrTuning,
			Message: "failed to parse species tuning file " + cfg.TuningFile,
			Err:     err,
		}
	}

	return tuning, nil
}
