// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// defaultRankingLimit applies when the limit query parameter is absent.
const defaultRankingLimit = 25

// RankingsHandler serves ranked district lists per chamber.
type RankingsHandler struct {
	deps Dependencies
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps Dependencies) *RankingsHandler {
	return &RankingsHandler{deps: deps}
}

type rankingsResponse struct {
	Chamber model.Chamber `json:"chamber"`
	Limit   int           `json:"limit"`
	Entries []Entry       `json:"entries"`
}

// HandleGetRankings handles GET /api/rankings?chamber=house&limit=25 requests.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	chamber := model.Chamber(strings.ToLower(r.URL.Query().Get("chamber")))
	if !chamber.Valid() {
		writeError(w, http.StatusBadRequest, "bad_request", ErrUnknownChamber)
		return
	}

	limit := defaultRankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrInvalidLimit)
			return
		}
		limit = parsed
	}

	entries, err := h.deps.TopN(r.Context(), chamber, limit)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rankingsResponse{
		Chamber: chamber,
		Limit:   limit,
		Entries: entries,
	})
}
