// Package domain contains the core data types for the VoyageAI trip planner.
// This package has zero third-party dependencies beyond uuid and is imported
// by every other internal package (repo, service, gateway, handler).
package domain

import (
	"github.com/google/uuid"
)

// Trip is the aggregate root for one planning session. It exclusively owns
// its nodes and edges; nothing is shared across trips. Nodes[i] is the i-th
// stop in itinerary order, and by convention Edges[i] connects
// Nodes[i] → Nodes[i+1], though that adjacency is established by the
// generator and not re-validated here.
//
// StartDate and EndDate are opaque strings — the planner never does date
// arithmetic on them, it only echoes them back to the client and the AI.
type Trip struct {
	ID          uuid.UUID       `json:"id"`
	Destination string          `json:"destination"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Travelers   int             `json:"travelers"`
	Nodes       []CityNode      `json:"nodes"`
	Edges       []TransportEdge `json:"edges"`
	TotalCost   int             `json:"total_cost"`
}

// WithNodePatch returns a copy of the trip with patch applied to the node
// with the given id. An unknown id is a silent no-op: the returned trip is
// an unchanged copy. The caller is responsible for recomputing TotalCost.
func (t Trip) WithNodePatch(nodeID string, patch NodePatch) Trip {
	nodes := make([]CityNode, len(t.Nodes))
	for i, n := range t.Nodes {
		if n.ID == nodeID {
			n = n.Apply(patch)
		}
		nodes[i] = n
	}
	t.Nodes = nodes
	return t
}

// WithEdgePatch returns a copy of the trip with patch applied to the edge
// with the given id. Unknown ids are silent no-ops, as in WithNodePatch.
func (t Trip) WithEdgePatch(edgeID string, patch EdgePatch) Trip {
	edges := make([]TransportEdge, len(t.Edges))
	for i, e := range t.Edges {
		if e.ID == edgeID {
			e = e.Apply(patch)
		}
		edges[i] = e
	}
	t.Edges = edges
	return t
}

// WithAllTiers returns a copy of the trip with every node set to tier.
// A node's selected hotel offer is deliberately left in place — an explicit
// selection keeps overriding the tier default until cleared or replaced.
func (t Trip) WithAllTiers(tier HotelTier) Trip {
	nodes := make([]CityNode, len(t.Nodes))
	for i, n := range t.Nodes {
		n.HotelTier = tier
		nodes[i] = n
	}
	t.Nodes = nodes
	return t
}

// WithOptimization returns a copy of the trip with the optimizer's sparse
// patch set merged in by id:
//
//   - a node patch overwrites only that node's Nights
//   - an edge patch overwrites Mode, Cost, and Duration
//   - trip entries with no matching patch are left exactly as they were
//   - patches whose id matches nothing in the trip are ignored — the
//     optimizer may retune existing stops but never add or remove them
//
// The result's Reasoning is not trip state; callers surface it separately.
func (t Trip) WithOptimization(result OptimizationResult) Trip {
	nightsByID := make(map[string]int, len(result.Nodes))
	for _, p := range result.Nodes {
		nightsByID[p.ID] = p.Nights
	}
	edgePatchByID := make(map[string]EdgeOptimization, len(result.Edges))
	for _, p := range result.Edges {
		edgePatchByID[p.ID] = p
	}

	nodes := make([]CityNode, len(t.Nodes))
	for i, n := range t.Nodes {
		if nights, ok := nightsByID[n.ID]; ok {
			n.Nights = clampNights(nights)
		}
		nodes[i] = n
	}

	edges := make([]TransportEdge, len(t.Edges))
	for i, e := range t.Edges {
		if p, ok := edgePatchByID[e.ID]; ok {
			e.Mode = p.Mode
			e.Cost = p.Cost
			e.Duration = p.Duration
		}
		edges[i] = e
	}

	t.Nodes = nodes
	t.Edges = edges
	return t
}
