// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	service "github.com/russellteter/blue-intelligence/internal/app"
)

// RefreshHandler triggers a new scoring run over the input files.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

type refreshResponse struct {
	Status   string              `json:"status"`
	Excluded []service.Exclusion `json:"excluded"`
}

// HandleRefresh handles POST /api/refresh requests. The run is
// synchronous; the response reflects the snapshot now being served.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	if err := h.deps.Refresh(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "refresh_failed", err)
		return
	}

	excluded := h.deps.Excluded()
	if excluded == nil {
		excluded = []service.Exclusion{}
	}
	writeJSON(w, http.StatusOK, refreshResponse{
		Status:   "ok",
		Excluded: excluded,
	})
}
