package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"reelcaster/internal/types"
)

// TideClient fetches tidal predictions from the configured tide provider.
type TideClient struct {
	*BaseClient
	baseURL string
	apiKey  types.SecretString
}

// NewTideClient constructs a TideClient. baseURL carries no trailing slash.
func NewTideClient(base *BaseClient, baseURL string, apiKey types.SecretString) *TideClient {
	return &TideClient{
		BaseClient: base,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Provider wire format. Current speed is signed: positive flood, negative ebb.
type tideResponse struct {
	Station     string     `json:"station"`
	Predictions []tideTick `json:"predictions"`
}

type tideTick struct {
	Time           time.Time  `json:"time"`
	CurrentSpeedKt float64    `json:"current_speed_kt"`
	IsRising       bool       `json:"is_rising"`
	HeightM        float64    `json:"height_m"`
	RangeM         float64    `json:"range_m"`
	WaterTempC     *float64   `json:"water_temp_c,omitempty"`
	ChangeRateMHr  float64    `json:"change_rate_m_hr"`
	NextTide       *tideEvent `json:"next_tide,omitempty"`
	PreviousTide   *tideEvent `json:"previous_tide,omitempty"`
}

type tideEvent struct {
	Time    time.Time `json:"time"`
	HeightM float64   `json:"height_m"`
}

// Predictions fetches the snapshot series for a station over [from, to].
// Failures map to ErrCodeUpstreamTide.
func (c *TideClient) Predictions(ctx context.Context, station string, from, to time.Time) (*TideSeries, error) {
	q := url.Values{}
	q.Set("start", from.UTC().Format(time.RFC3339))
	q.Set("end", to.UTC().Format(time.RFC3339))
	q.Set("interval", "15m")

	endpoint := c.baseURL + "/v1/stations/" + url.PathEscape(station) + "/predictions?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalUnexpected, "failed to build tide request", err)
	}
	if key := c.apiKey.Unmask(); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamTide, "tide provider request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeUpstreamTide,
			"tide station not found",
			nil,
			map[string]any{"station": station},
		)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeUpstreamTide,
			"tide provider returned unexpected status",
			nil,
			map[string]any{"status": resp.StatusCode},
		)
	}

	var wire tideResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamTide, "failed to decode tide response", err)
	}

	series := &TideSeries{
		Station:   wire.Station,
		Snapshots: make([]TimedSnapshot, 0, len(wire.Predictions)),
	}
	for _, p := range wire.Predictions {
		snap := types.TideSnapshot{
			CurrentSpeedKt: p.CurrentSpeedKt,
			IsRising:       p.IsRising,
			CurrentHeightM: p.HeightM,
			TidalRangeM:    p.RangeM,
			WaterTempC:     p.WaterTempC,
			ChangeRateMHr:  p.ChangeRateMHr,
		}
		if p.NextTide != nil {
			snap.NextTide = &types.TideEvent{Time: p.NextTide.Time, HeightM: p.NextTide.HeightM}
		}
		if p.PreviousTide != nil {
			snap.PreviousTide = &types.TideEvent{Time: p.PreviousTide.Time, HeightM: p.PreviousTide.HeightM}
		}
		series.Snapshots = append(series.Snapshots, TimedSnapshot{Time: p.Time, Snapshot: snap})
	}

	return series, nil
}
