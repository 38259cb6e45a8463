// Package api implements the HTTP surface of the scoring service: the chi
// router, the JSON response envelope, middleware, and the handlers for
// on-demand scoring, species metadata, and stored score history.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"reelcaster/internal/config"
	"reelcaster/internal/scoring"
	"reelcaster/internal/types"
)

// SpotStore is the subset of the spot repository the API depends on. Defined
// locally to keep the handler package decoupled from the db package's
// concrete types.
type SpotStore interface {
	ListActive(ctx context.Context) ([]types.Spot, error)
	Get(ctx context.Context, id string) (*types.Spot, error)
}

// ScoreStore reads persisted poller output.
type ScoreStore interface {
	History(ctx context.Context, spotID string, species types.Species, from, to time.Time) ([]*types.ScoreResult, error)
}

// ReportStore accepts and reads angler catch reports.
type ReportStore interface {
	Insert(ctx context.Context, report types.CatchReport) (*types.CatchReport, error)
	Recent(ctx context.Context, spotID string, species types.Species, since time.Time) ([]types.CatchReport, error)
}

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	Config    *config.Config
	Engine    *scoring.Engine
	Spots     SpotStore
	Scores    ScoreStore
	Reports   ReportStore
	Logger    *slog.Logger
	Validator *validator.Validate

	// HealthProbes are checked by the health endpoint. Empty means healthy.
	HealthProbes []HealthProbe

	router *chi.Mux
}

// NewServer constructs the server and fails fast on missing core
// dependencies. Store dependencies may be nil when the service runs without
// a database (scoring endpoints stay available, history returns errors).
func NewServer(cfg *config.Config, engine *scoring.Engine, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("api: config is required")
	}
	if engine == nil {
		return nil, errors.New("api: scoring engine is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		Config:    cfg,
		Engine:    engine,
		Logger:    logger,
		Validator: validator.New(),
		router:    chi.NewRouter(),
	}
	return s, nil
}

// Handler returns the fully routed http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestTimeout is the soft deadline applied to every request context,
// chosen below the server's write timeout so handlers fail before the
// connection does.
const requestTimeout = 25 * time.Second

// MountRoutes registers the global middleware chain and all endpoints.
// Middleware order matters: Recoverer outermost, then timeout, request ID,
// and logging.
func (s *Server) MountRoutes() {
	s.router.Use(s.Recoverer)
	s.router.Use(ContextTimeoutMiddleware(requestTimeout))
	s.router.Use(RequestIDMiddleware)
	s.router.Use(RequestLogger(s.Logger))

	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/scores", s.HandleScore)
		r.Post("/scores/batch", s.HandleScoreBatch)

		r.Get("/species", s.HandleListSpecies)
		r.Get("/species/{id}/explanations", s.HandleSpeciesExplanations)
		r.Get("/species/{id}/factors/{key}", s.HandleFactorExplanation)

		r.Get("/spots", s.HandleListSpots)
		r.Get("/spots/{id}/scores", s.HandleSpotScores)
		r.Post("/spots/{id}/reports", s.HandleCreateReport)
	})

	s.router.Get("/healthz", s.HandleHealth)
}
