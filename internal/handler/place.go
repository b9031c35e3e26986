package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetNodeDetails handles GET /api/trips/{tripID}/nodes/{nodeID}/details.
// It returns the selection-sidebar data for one stop: the recommendation
// write-up and the current hotel offers. Either section may be empty when
// its upstream fetch failed; only an unknown trip or node id is an error.
func (s *Server) GetNodeDetails(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	details, err := s.places.NodeDetails(r.Context(), tripID, chi.URLParam(r, "nodeID"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}
