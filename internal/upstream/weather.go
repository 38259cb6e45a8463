package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"reelcaster/internal/types"
)

// WeatherClient fetches forecast samples from the configured weather
// provider. It embeds BaseClient for retries, circuit breaking and error
// mapping.
type WeatherClient struct {
	*BaseClient
	baseURL string
	apiKey  types.SecretString
}

// NewWeatherClient constructs a WeatherClient. baseURL carries no trailing
// slash; apiKey may be empty for unauthenticated providers.
func NewWeatherClient(base *BaseClient, baseURL string, apiKey types.SecretString) *WeatherClient {
	return &WeatherClient{
		BaseClient: base,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Provider wire format. Samples arrive at 15-minute resolution; days carry
// the astronomical context.
type weatherResponse struct {
	Samples []weatherSample `json:"samples"`
	Days    []weatherDay    `json:"days"`
}

type weatherSample struct {
	Time               time.Time `json:"time"`
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

type weatherDay struct {
	Date    string          `json:"date"`
	Sunrise time.Time       `json:"sunrise"`
	Sunset  time.Time       `json:"sunset"`
	Majors  []solunarWindow `json:"solunar_majors,omitempty"`
	Minors  []solunarWindow `json:"solunar_minors,omitempty"`
}

type solunarWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Forecast fetches the sample series and astronomical context for a point
// over [from, to]. Failures map to ErrCodeUpstreamWeather so callers can
// distinguish the failing provider.
func (c *WeatherClient) Forecast(ctx context.Context, lat, lon float64, from, to time.Time) (*Forecast, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.5f", lat))
	q.Set("lon", fmt.Sprintf("%.5f", lon))
	q.Set("start", from.UTC().Format(time.RFC3339))
	q.Set("end", to.UTC().Format(time.RFC3339))
	q.Set("resolution", "15m")

	endpoint := c.baseURL + "/v1/forecast?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalUnexpected, "failed to build weather request", err)
	}
	if key := c.apiKey.Unmask(); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather, "weather provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeUpstreamWeather,
			"weather provider returned unexpected status",
			nil,
			map[string]any{"status": resp.StatusCode},
		)
	}

	var wire weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather, "failed to decode weather response", err)
	}

	return mapForecast(wire), nil
}

func mapForecast(wire weatherResponse) *Forecast {
	f := &Forecast{
		Samples: make([]types.EnvironmentalSample, 0, len(wire.Samples)),
		Days:    make([]ForecastDay, 0, len(wire.Days)),
	}

	for _, s := range wire.Samples {
		f.Samples = append(f.Samples, types.EnvironmentalSample{
			Timestamp:          s.Time,
			TemperatureC:       s.TemperatureC,
			WindSpeedKmh:       s.WindSpeedKmh,
			WindDirectionDeg:   s.WindDirectionDeg,
			PrecipitationMM:    s.PrecipitationMM,
			CloudCoverPercent:  s.CloudCoverPercent,
			PressureHPa:        s.PressureHPa,
			WaveHeightM:        s.WaveHeightM,
			VisibilityKm:       s.VisibilityKm,
			LightningPotential: s.LightningPotential,
		})
	}

	for _, d := range wire.Days {
		day := ForecastDay{
			Date:    d.Date,
			Sunrise: d.Sunrise,
			Sunset:  d.Sunset,
		}
		for _, w := range d.Majors {
			day.Solunar = append(day.Solunar, types.SolunarWindow{
				Kind: types.SolunarMajor, Start: w.Start, End: w.End,
			})
		}
		for _, w := range d.Minors {
			day.Solunar = append(day.Solunar, types.SolunarWindow{
				Kind: types.SolunarMinor, Start: w.Start, End: w.End,
			})
		}
		f.Days = append(f.Days, day)
	}

	return f
}
