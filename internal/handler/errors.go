package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/voyageai/backend/internal/domain"
	"github.com/voyageai/backend/internal/gateway"
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON serializes v with the given status. Encoding failures are logged
// and otherwise dropped — the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondServiceError maps a service-layer error onto the HTTP surface:
//
//	domain.ErrNotFound   → 404 not_found
//	domain.ErrValidation → 422 validation_error
//	gateway errors       → 502 upstream_error
//	anything else        → 500 internal_error (logged)
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "trip not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, gateway.ErrGeneration),
		errors.Is(err, gateway.ErrRecommendation),
		errors.Is(err, gateway.ErrOptimization),
		errors.Is(err, gateway.ErrOfferFetch):
		slog.ErrorContext(r.Context(), "upstream call failed", "error", err)
		writeError(w, http.StatusBadGateway, "upstream_error", upstreamMessage(err))
	default:
		slog.ErrorContext(r.Context(), "unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// upstreamMessage reports which external call failed without leaking the
// underlying transport or payload detail to the client.
func upstreamMessage(err error) string {
	switch {
	case errors.Is(err, gateway.ErrGeneration):
		return gateway.ErrGeneration.Error()
	case errors.Is(err, gateway.ErrRecommendation):
		return gateway.ErrRecommendation.Error()
	case errors.Is(err, gateway.ErrOptimization):
		return gateway.ErrOptimization.Error()
	default:
		return gateway.ErrOfferFetch.Error()
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.TripService.Plan: validation error: destination is
// required" → "destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
