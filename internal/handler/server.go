// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into resource files
// (health.go, trip.go, place.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voyageai/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer or any gateway.
type TripServicer interface {
	Plan(ctx context.Context, req domain.PlanRequest) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	UpdateNode(ctx context.Context, tripID uuid.UUID, nodeID string, patch domain.NodePatch) (domain.Trip, error)
	UpdateEdge(ctx context.Context, tripID uuid.UUID, edgeID string, patch domain.EdgePatch) (domain.Trip, error)
	SetAllTiers(ctx context.Context, tripID uuid.UUID, tier domain.HotelTier) (domain.Trip, error)
	Optimize(ctx context.Context, tripID uuid.UUID) (domain.Trip, string, error)
	Confirm(ctx context.Context, tripID uuid.UUID) (domain.BookingConfirmation, error)
}

// PlaceServicer defines the sidebar lookup the place handler depends on.
type PlaceServicer interface {
	NodeDetails(ctx context.Context, tripID uuid.UUID, nodeID string) (domain.PlaceDetails, error)
}

// Server holds the handler dependencies for all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	trips  TripServicer
	places PlaceServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, places PlaceServicer) *Server {
	return &Server{trips: trips, places: places}
}

// Routes returns the chi router for the full API surface. Middleware is the
// caller's concern; this router carries paths and methods only.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Route("/api/trips", func(r chi.Router) {
		r.Post("/", s.PlanTrip)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Patch("/nodes/{nodeID}", s.UpdateNode)
			r.Patch("/edges/{edgeID}", s.UpdateEdge)
			r.Put("/tier", s.SetAllTiers)
			r.Post("/optimize", s.OptimizeTrip)
			r.Get("/nodes/{nodeID}/details", s.GetNodeDetails)
			r.Post("/confirm", s.ConfirmTrip)
		})
	})
	return r
}
