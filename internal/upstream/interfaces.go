package upstream

import (
	"context"
	"time"

	"reelcaster/internal/types"
)

// Forecast is the assembled weather-provider payload for one location: the
// 15-minute sample series plus the per-day astronomical context the scorers
// need (sun transitions and solunar feeding windows).
type Forecast struct {
	Samples []types.EnvironmentalSample
	Days    []ForecastDay
}

// ForecastDay carries the astronomical context for one calendar day.
type ForecastDay struct {
	Date    string // YYYY-MM-DD in the location's timezone
	Sunrise time.Time
	Sunset  time.Time
	Solunar []types.SolunarWindow
}

// DayFor resolves the ForecastDay covering a timestamp. The boolean is false
// when the forecast does not cover the day; callers degrade to scoring
// without light or solunar context.
func (f *Forecast) DayFor(t time.Time) (ForecastDay, bool) {
	key := t.UTC().Format("2006-01-02")
	for _, d := range f.Days {
		if d.Date == key {
			return d, true
		}
	}
	return ForecastDay{}, false
}

// PressureHistory extracts the barometric series preceding a timestamp from
// the sample series, oldest to newest, for the pressure-trend scorer.
func (f *Forecast) PressureHistory(until time.Time, window time.Duration) []types.PressureReading {
	var out []types.PressureReading
	for _, s := range f.Samples {
		if s.Timestamp.After(until) || s.Timestamp.Before(until.Add(-window)) {
			continue
		}
		out = append(out, types.PressureReading{Time: s.Timestamp, HPa: s.PressureHPa})
	}
	return out
}

// TideSeries is the tide-provider payload for one station: snapshots at the
// requested interval, keyed by time.
type TideSeries struct {
	Station   string
	Snapshots []TimedSnapshot
}

// TimedSnapshot pairs a tide snapshot with its prediction time.
type TimedSnapshot struct {
	Time     time.Time
	Snapshot types.TideSnapshot
}

// At returns the snapshot closest to a timestamp within half the prediction
// interval. The boolean is false when the series does not cover the time.
func (s *TideSeries) At(t time.Time, interval time.Duration) (*types.TideSnapshot, bool) {
	half := interval / 2
	for i := range s.Snapshots {
		d := s.Snapshots[i].Time.Sub(t)
		if d < 0 {
			d = -d
		}
		if d <= half {
			snap := s.Snapshots[i].Snapshot
			return &snap, true
		}
	}
	return nil, false
}

// WeatherProvider supplies forecast samples and astronomical context for a
// point. Implementations must be safe for concurrent use.
type WeatherProvider interface {
	Forecast(ctx context.Context, lat, lon float64, from, to time.Time) (*Forecast, error)
}

// TideProvider supplies tidal predictions for a station. Implementations
// must be safe for concurrent use.
type TideProvider interface {
	Predictions(ctx context.Context, station string, from, to time.Time) (*TideSeries, error)
}
