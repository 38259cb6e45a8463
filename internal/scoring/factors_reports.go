package scoring

import (
	"fmt"
	"time"
)

// Recency weights for catch-report confidence. Fresh reports dominate; a
// month-old report is half a signal, anything older a quarter.
const (
	reportFreshAge  = 7 * 24 * time.Hour
	reportRecentAge = 30 * 24 * time.Hour

	reportFreshWeight  = 1.0
	reportRecentWeight = 0.5
	reportStaleWeight  = 0.25
)

// scoreCatchReports aggregates recency-weighted reports into a 0-10
// confidence score: more recent reports, more reports, and more successful
// reports all push the score up. Species whose profile omits this factor
// never reach here; species with the factor but no data at runtime degrade
// to neutral like any other missing input.
func scoreCatchReports(in Input) outcome {
	reports := in.Context.Reports
	if len(reports) == 0 {
		return neutralOutcome("no recent reports", "No catch reports in range; confidence unchanged.")
	}

	now := in.Sample.Timestamp
	var weighted, successWeighted float64
	for _, r := range reports {
		age := now.Sub(r.ReportedAt)
		if age < 0 {
			age = 0
		}
		w := reportStaleWeight
		switch {
		case age <= reportFreshAge:
			w = reportFreshWeight
		case age <= reportRecentAge:
			w = reportRecentWeight
		}
		weighted += w
		if r.Success {
			successWeighted += w
		}
	}

	// Volume term saturates around five fresh-equivalent reports; the
	// success ratio scales it between half and full strength.
	volume := clamp(weighted/5.0, 0, 1)
	ratio := successWeighted / weighted
	score := maxScore * volume * (0.5 + 0.5*ratio)

	return newOutcome(
		fmt.Sprintf("%d reports, %.0f%% successful", len(reports), ratio*100),
		score,
		"Recency-weighted report confidence over the last 30 days.")
}
