package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthWithoutProbes(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestHealthReportsUnhealthyProbe(t *testing.T) {
	srv := newTestServer(t)
	srv.HealthProbes = []HealthProbe{
		ProbeFunc{ProbeName: "database", Fn: func(context.Context) error {
			return errors.New("connection refused")
		}},
		ProbeFunc{ProbeName: "archive", Fn: func(context.Context) error {
			return nil
		}},
	}

	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp struct {
		Status     string `json:"status"`
		Components map[string]struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "unhealthy", resp.Components["database"].Status)
	assert.Equal(t, "healthy", resp.Components["archive"].Status)
}
