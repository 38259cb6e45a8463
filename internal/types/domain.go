package types

import "time"

// EnvironmentalSample contains the weather values at a single forecast tick.
// Samples arrive at 15-minute resolution from the weather provider and are
// immutable once constructed.
type EnvironmentalSample struct {
	Timestamp          time.Time `json:"timestamp"`
	TemperatureC       float64   `json:"temperature_c"`
	WindSpeedKmh       float64   `json:"wind_speed_kmh"`
	WindDirectionDeg   float64   `json:"wind_direction_deg"`
	PrecipitationMM    float64   `json:"precipitation_mm"`
	CloudCoverPercent  float64   `json:"cloud_cover_percent"`
	PressureHPa        float64   `json:"pressure_hpa"`
	WaveHeightM        *float64  `json:"wave_height_m,omitempty"`
	VisibilityKm       *float64  `json:"visibility_km,omitempty"`
	LightningPotential *float64  `json:"lightning_potential,omitempty"`
}

// TideEvent is a single high or low tide prediction.
type TideEvent struct {
	HeightM float64   `json:"height_m"`
	Time    time.Time `json:"time"`
}

// TideSnapshot contains the tidal state at a point in time. CurrentSpeedKt is
// signed: positive on the flood, negative on the ebb. Scorers that only care
// about magnitude take the absolute value.
type TideSnapshot struct {
	CurrentSpeedKt float64    `json:"current_speed_kt"`
	IsRising       bool       `json:"is_rising"`
	CurrentHeightM float64    `json:"current_height_m"`
	TidalRangeM    float64    `json:"tidal_range_m"`
	WaterTempC     *float64   `json:"water_temp_c,omitempty"`
	ChangeRateMHr  float64    `json:"change_rate_m_hr"`
	NextTide       *TideEvent `json:"next_tide,omitempty"`
	PreviousTide   *TideEvent `json:"previous_tide,omitempty"`
}

// PressureReading is one historical barometric observation, used to derive
// the pressure trend.
type PressureReading struct {
	Time time.Time `json:"time"`
	HPa  float64   `json:"hpa"`
}

// SolunarKind distinguishes major (lunar transit) from minor (lunar rise/set)
// feeding windows.
type SolunarKind string

const (
	SolunarMajor SolunarKind = "major"
	SolunarMinor SolunarKind = "minor"
)

// SolunarWindow is a single solunar feeding period.
type SolunarWindow struct {
	Kind  SolunarKind `json:"kind"`
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
}

// AlgorithmContext supplies time-of-day and trend context to the factor
// scorers. It is passed by reference and never mutated by the engine.
type AlgorithmContext struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`

	// PressureHistory is ordered oldest to newest. Scorers tolerate an empty
	// or short history by degrading to a neutral score.
	PressureHistory []PressureReading `json:"pressure_history,omitempty"`

	// SoakDurationHours is the planned trap soak for passive-gear species.
	// Zero means unknown.
	SoakDurationHours float64 `json:"soak_duration_hours,omitempty"`

	WindDirectionDeg    *float64 `json:"wind_direction_deg,omitempty"`
	CurrentDirectionDeg *float64 `json:"current_direction_deg,omitempty"`

	// Solunar holds precomputed lunar feeding windows covering the sample's day.
	Solunar []SolunarWindow `json:"solunar,omitempty"`

	// Reports are recent catch reports near the scored spot, newest first not
	// required; the report scorer weighs each by age.
	Reports []CatchReport `json:"reports,omitempty"`
}

// CatchReport is an angler-submitted outcome record used by the catch-report
// confidence factor.
type CatchReport struct {
	ID         string    `json:"id" db:"id"`
	SpotID     string    `json:"spot_id" db:"spot_id"`
	Species    Species   `json:"species" db:"species"`
	ReportedAt time.Time `json:"reported_at" db:"reported_at"`
	Caught     int       `json:"caught" db:"caught"`
	Success    bool      `json:"success" db:"success"`
}

// FactorResult is the scored outcome of a single environmental factor.
// Score is always within [0,10]; Weight is the species-specific weight
// applied during aggregation.
type FactorResult struct {
	Value       string  `json:"value"`
	Weight      float64 `json:"weight"`
	Score       float64 `json:"score"`
	Description string  `json:"description,omitempty"`
}

// ScoreResult is the complete scoring outcome for one (sample, species) pair.
// It is constructed once by the engine and never mutated afterwards.
type ScoreResult struct {
	Species          Species                    `json:"species"`
	SpotID           string                     `json:"spot_id,omitempty"`
	Timestamp        time.Time                  `json:"timestamp"`
	Total            float64                    `json:"total"`
	Factors          map[FactorKey]FactorResult `json:"factors"`
	IsSafe           bool                       `json:"is_safe"`
	SafetyWarnings   []string                   `json:"safety_warnings,omitempty"`
	IsInSeason       bool                       `json:"is_in_season"`
	AlgorithmVersion AlgorithmVersion           `json:"algorithm_version"`
	StrategyAdvice   []string                   `json:"strategy_advice,omitempty"`
}

// Spot is a named fishing location the poller scores on a schedule.
type Spot struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Lat         float64   `json:"lat" db:"lat"`
	Lon         float64   `json:"lon" db:"lon"`
	TideStation string    `json:"tide_station" db:"tide_station"`
	Species     []Species `json:"species" db:"species"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// JobRun tracks one scheduled scoring run for observability.
type JobRun struct {
	ID         int64      `json:"id" db:"id"`
	JobType    string     `json:"job_type" db:"job_type"`
	StartedAt  time.Time  `json:"started_at" db:"started_at"`
	FinishedAt *time.Time `json:"finished_at" db:"finished_at"`
	Status     string     `json:"status" db:"status"`
	ItemsCount int        `json:"items_count" db:"items_count"`
	Error      string     `json:"error,omitempty" db:"error"`
}
