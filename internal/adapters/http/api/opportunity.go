// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// OpportunityHandler serves the scoring snapshot and per-district reads.
type OpportunityHandler struct {
	deps Dependencies
}

// NewOpportunityHandler creates a new opportunity handler.
func NewOpportunityHandler(deps Dependencies) *OpportunityHandler {
	return &OpportunityHandler{deps: deps}
}

// HandleGetSnapshot handles GET /api/opportunity requests.
func (h *OpportunityHandler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	snap, err := h.deps.Snapshot(r.Context())
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// HandleGetDistrict handles GET /api/opportunity/{chamber}/{district} requests.
func (h *OpportunityHandler) HandleGetDistrict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/opportunity/")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	chamber := model.Chamber(strings.ToLower(parts[0]))
	if !chamber.Valid() {
		writeError(w, http.StatusBadRequest, "bad_request", ErrUnknownChamber)
		return
	}

	rec, err := h.deps.District(r.Context(), chamber, parts[1])
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
