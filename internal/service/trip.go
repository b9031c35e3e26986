// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce the trip invariants, and orchestrate
// repo and gateway calls. No HTTP and no AI plumbing lives here — services
// depend on interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voyageai/backend/internal/cost"
	"github.com/voyageai/backend/internal/domain"
	"github.com/voyageai/backend/internal/repo"
)

// ItineraryGateway defines the AI operations the trip service depends on.
// Defining the interface here (in the consumer package) lets service tests
// inject a fake without touching the real AI client.
type ItineraryGateway interface {
	// GenerateItinerary proposes the stops and legs for a new plan.
	GenerateItinerary(ctx context.Context, req domain.PlanRequest) ([]domain.CityNode, []domain.TransportEdge, error)

	// GetOptimization returns a sparse patch set for an existing trip.
	GetOptimization(ctx context.Context, trip domain.Trip) (domain.OptimizationResult, error)
}

// TripService is the authoritative holder of trip state. Every mutation is
// an atomic load → pure transform → recompute total → store step under one
// mutex, so no two mutations can interleave mid-update and TotalCost is
// consistent with the rest of the snapshot before any call returns.
type TripService struct {
	trips repo.TripRepo
	ai    ItineraryGateway

	// mu serializes mutations. In-flight external calls (Optimize's AI
	// request) do NOT hold it — see Optimize for the consequences.
	mu sync.Mutex
}

// NewTripService constructs a TripService backed by the provided repo and
// AI gateway.
func NewTripService(trips repo.TripRepo, ai ItineraryGateway) *TripService {
	return &TripService{trips: trips, ai: ai}
}

// Plan validates the request, asks the AI to generate an itinerary, and
// initializes a new trip from the result. Every generated node starts at
// tier Standard with no selected hotel regardless of what the generator
// returned — lodging choices are always a fresh default at creation time.
// On gateway failure nothing is stored and the error propagates unretried.
func (s *TripService) Plan(ctx context.Context, req domain.PlanRequest) (domain.Trip, error) {
	if err := validatePlanRequest(req); err != nil {
		return domain.Trip{}, err
	}

	nodes, edges, err := s.ai.GenerateItinerary(ctx, req)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Plan: %w", err)
	}
	for i := range nodes {
		nodes[i].HotelTier = domain.TierStandard
		nodes[i].SelectedHotel = nil
	}

	trip := domain.Trip{
		ID:          uuid.New(),
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Travelers:   req.Travelers,
		Nodes:       nodes,
		Edges:       edges,
	}
	trip.TotalCost = cost.Total(trip)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.trips.Save(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Plan: %w", err)
	}
	return trip, nil
}

// GetByID returns the current snapshot of a trip.
// Returns domain.ErrNotFound if the trip does not exist or has expired.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id.String())
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// UpdateNode applies a partial update to one node and recomputes the total.
// An unknown nodeID is a silent no-op returning the unchanged trip — the
// client only ever supplies ids it was handed at generation time.
func (s *TripService) UpdateNode(ctx context.Context, tripID uuid.UUID, nodeID string, patch domain.NodePatch) (domain.Trip, error) {
	if patch.HotelTier != nil && !patch.HotelTier.Valid() {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateNode: %w: unknown hotel tier %q", domain.ErrValidation, *patch.HotelTier)
	}
	return s.mutate(ctx, "service.TripService.UpdateNode", tripID, func(t domain.Trip) domain.Trip {
		return t.WithNodePatch(nodeID, patch)
	})
}

// UpdateEdge applies a partial update to one edge and recomputes the total.
// Unknown edgeIDs are silent no-ops, as in UpdateNode.
func (s *TripService) UpdateEdge(ctx context.Context, tripID uuid.UUID, edgeID string, patch domain.EdgePatch) (domain.Trip, error) {
	if patch.Mode != nil && !patch.Mode.Valid() {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateEdge: %w: unknown transport mode %q", domain.ErrValidation, *patch.Mode)
	}
	return s.mutate(ctx, "service.TripService.UpdateEdge", tripID, func(t domain.Trip) domain.Trip {
		return t.WithEdgePatch(edgeID, patch)
	})
}

// SetAllTiers applies the same lodging tier to every node. Nodes with an
// explicitly selected hotel keep it — the selection continues to override
// the tier default until cleared or replaced.
func (s *TripService) SetAllTiers(ctx context.Context, tripID uuid.UUID, tier domain.HotelTier) (domain.Trip, error) {
	if !tier.Valid() {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetAllTiers: %w: unknown hotel tier %q", domain.ErrValidation, tier)
	}
	return s.mutate(ctx, "service.TripService.SetAllTiers", tripID, func(t domain.Trip) domain.Trip {
		return t.WithAllTiers(tier)
	})
}

// Optimize sends the current snapshot to the AI optimizer and merges the
// result back sparsely by id. The AI call runs without holding the mutation
// lock, so the user can keep editing while it is in flight; when the result
// lands it is merged into the then-current snapshot, and a concurrent manual
// edit to a patched field is overwritten last-writer-wins. That race is an
// accepted part of the contract, not a bug.
//
// On any gateway failure the stored trip is left exactly as it was — there
// is no partial merge. The reasoning string is returned alongside the trip
// and is not part of trip state.
func (s *TripService) Optimize(ctx context.Context, tripID uuid.UUID) (domain.Trip, string, error) {
	snapshot, err := s.trips.GetByID(ctx, tripID.String())
	if err != nil {
		return domain.Trip{}, "", fmt.Errorf("service.TripService.Optimize: %w", err)
	}

	result, err := s.ai.GetOptimization(ctx, snapshot)
	if err != nil {
		return domain.Trip{}, "", fmt.Errorf("service.TripService.Optimize: %w", err)
	}

	merged, err := s.mutate(ctx, "service.TripService.Optimize", tripID, func(t domain.Trip) domain.Trip {
		return t.WithOptimization(result)
	})
	if err != nil {
		return domain.Trip{}, "", err
	}
	return merged, result.Reasoning, nil
}

// Confirm mock-confirms the booking for a trip and returns the receipt.
// Nothing is reserved anywhere; the reference code is generated locally and
// the totals are frozen from the snapshot at confirm time.
func (s *TripService) Confirm(ctx context.Context, tripID uuid.UUID) (domain.BookingConfirmation, error) {
	trip, err := s.trips.GetByID(ctx, tripID.String())
	if err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	return domain.BookingConfirmation{
		Reference:   "TBO-MOCK-" + strings.ToUpper(uuid.NewString()[:8]),
		TripID:      trip.ID,
		Travelers:   trip.Travelers,
		TotalCost:   trip.TotalCost,
		ConfirmedAt: time.Now().UTC(),
	}, nil
}

// mutate is the single mutation path: load the current snapshot, apply the
// pure transform, recompute the total, and store — all under the lock.
func (s *TripService) mutate(ctx context.Context, op string, tripID uuid.UUID, transform func(domain.Trip) domain.Trip) (domain.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trip, err := s.trips.GetByID(ctx, tripID.String())
	if err != nil {
		return domain.Trip{}, fmt.Errorf("%s: %w", op, err)
	}

	trip = transform(trip)
	trip.TotalCost = cost.Total(trip)

	if err := s.trips.Save(ctx, trip); err != nil {
		return domain.Trip{}, fmt.Errorf("%s: %w", op, err)
	}
	return trip, nil
}

// validatePlanRequest enforces the input-layer rules the cost engine relies
// on: a destination and both dates must be present, and the traveler count
// must be at least one.
func validatePlanRequest(req domain.PlanRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.StartDate) == "" || strings.TrimSpace(req.EndDate) == "" {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if req.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}
	return nil
}
