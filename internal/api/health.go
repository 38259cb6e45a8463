package api

import (
	"context"
	"net/http"
	"time"
)

// healthCheckTimeout bounds the total time spent probing subsystems.
const healthCheckTimeout = 2 * time.Second

// HealthProbe is a named check against a critical dependency.
type HealthProbe interface {
	Name() string
	Check(ctx context.Context) error
}

// ProbeFunc adapts a plain function into a HealthProbe.
type ProbeFunc struct {
	ProbeName string
	Fn        func(ctx context.Context) error
}

func (p ProbeFunc) Name() string                    { return p.ProbeName }
func (p ProbeFunc) Check(ctx context.Context) error { return p.Fn(ctx) }

type componentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components,omitempty"`
}

// HandleHealth runs all registered probes under a shared deadline and
// reports 200 when every subsystem is healthy, 503 otherwise. With no probes
// registered (pure scoring mode) the service reports healthy.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if len(s.HealthProbes) == 0 {
		JSON(w, r, http.StatusOK, healthResponse{Status: "healthy"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	components := make(map[string]componentStatus, len(s.HealthProbes))
	allHealthy := true

	for _, probe := range s.HealthProbes {
		if err := probe.Check(ctx); err != nil {
			allHealthy = false
			components[probe.Name()] = componentStatus{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			continue
		}
		components[probe.Name()] = componentStatus{Status: "healthy"}
	}

	resp := healthResponse{Components: components}
	if allHealthy {
		resp.Status = "healthy"
		JSON(w, r, http.StatusOK, resp)
		return
	}
	resp.Status = "unhealthy"
	JSON(w, r, http.StatusServiceUnavailable, resp)
}
