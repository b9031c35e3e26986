package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voyageai/backend/internal/domain"
)

// setTierRequest is the body for PUT /api/trips/{tripID}/tier.
type setTierRequest struct {
	Tier domain.HotelTier `json:"tier"`
}

// optimizeResponse is the body for POST /api/trips/{tripID}/optimize: the
// merged trip plus the optimizer's reasoning, which is surfaced to the user
// but is not trip state.
type optimizeResponse struct {
	Trip      domain.Trip `json:"trip"`
	Reasoning string      `json:"reasoning"`
}

// PlanTrip handles POST /api/trips.
// It generates a fresh itinerary for the request and returns the new trip.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var req domain.PlanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	trip, err := s.trips.Plan(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// GetTrip handles GET /api/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateNode handles PATCH /api/trips/{tripID}/nodes/{nodeID}.
// The body is a partial node update; omitted fields are left untouched.
func (s *Server) UpdateNode(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	var patch domain.NodePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	trip, err := s.trips.UpdateNode(r.Context(), tripID, chi.URLParam(r, "nodeID"), patch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateEdge handles PATCH /api/trips/{tripID}/edges/{edgeID}.
func (s *Server) UpdateEdge(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	var patch domain.EdgePatch
	if !decodeBody(w, r, &patch) {
		return
	}

	trip, err := s.trips.UpdateEdge(r.Context(), tripID, chi.URLParam(r, "edgeID"), patch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// SetAllTiers handles PUT /api/trips/{tripID}/tier.
// It applies one lodging tier to every stop in the trip.
func (s *Server) SetAllTiers(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}
	var req setTierRequest
	if !decodeBody(w, r, &req) {
		return
	}

	trip, err := s.trips.SetAllTiers(r.Context(), tripID, req.Tier)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// OptimizeTrip handles POST /api/trips/{tripID}/optimize.
func (s *Server) OptimizeTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	trip, reasoning, err := s.trips.Optimize(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, optimizeResponse{Trip: trip, Reasoning: reasoning})
}

// ConfirmTrip handles POST /api/trips/{tripID}/confirm.
func (s *Server) ConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	confirmation, err := s.trips.Confirm(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmation)
}

// ---- request helpers -------------------------------------------------------

// tripIDParam parses the {tripID} path segment. On a malformed id it writes
// a 400 and reports false.
func tripIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "trip id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into v. On a malformed body it
// writes a 400 and reports false. Unknown fields are rejected so a typoed
// patch field fails loudly instead of silently not applying.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
