// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/russellteter/blue-intelligence/internal/adapters/repository"
	service "github.com/russellteter/blue-intelligence/internal/app"
	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Snapshot returns the latest full scoring run output.
	Snapshot(ctx context.Context) (*model.Snapshot, error)

	// District returns one district's result from the latest run.
	District(ctx context.Context, chamber model.Chamber, district string) (*model.DistrictOpportunity, error)

	// TopN returns a chamber's ranked districts, best first.
	TopN(ctx context.Context, chamber model.Chamber, n int) ([]Entry, error)

	// Refresh reloads the input files and reruns the scoring engine.
	Refresh(ctx context.Context) error

	// Excluded lists the districts skipped by the latest run.
	Excluded() []service.Exclusion
}

// Entry mirrors the read shape returned by ranking queries.
type Entry = repository.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	opportunityHandler *OpportunityHandler
	rankingsHandler    *RankingsHandler
	refreshHandler     *RefreshHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		opportunityHandler: NewOpportunityHandler(deps),
		rankingsHandler:    NewRankingsHandler(deps),
		refreshHandler:     NewRefreshHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/opportunity", MetricsMiddleware(s.opportunityHandler.HandleGetSnapshot, "opportunity"))
	mux.HandleFunc("/api/opportunity/", MetricsMiddleware(s.opportunityHandler.HandleGetDistrict, "opportunity_district"))
	mux.HandleFunc("/api/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/api/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "refresh"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeQueryError translates upstream errors into the right status code.
func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "not_ready", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrUnknownChamber), errors.Is(err, repository.ErrInvalidLimit):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
