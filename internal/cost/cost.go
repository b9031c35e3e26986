// Package cost derives a trip's total price from its current state.
// Everything here is pure and deterministic: no I/O, no clock, no rounding
// state. The service layer recomputes eagerly after every mutation — trips
// are tens of nodes at most, so there is nothing worth memoizing.
package cost

import (
	"math"

	"github.com/samber/lo"

	"github.com/voyageai/backend/internal/domain"
)

// Total computes the trip's total cost, rounded to the nearest whole
// currency unit.
//
// Transport is a straight sum over edge costs — a leg's price is trip-wide,
// not per head. Accommodation is nights × nightly rate × travelers per
// node, where the rate is the selected offer's price when one is chosen and
// the tier default otherwise. An empty trip totals zero.
//
// Travelers < 1 is a boundary condition the input layer prevents; Total
// does not clamp it.
func Total(t domain.Trip) int {
	transport := lo.SumBy(t.Edges, func(e domain.TransportEdge) float64 {
		return e.Cost
	})
	accommodation := lo.SumBy(t.Nodes, func(n domain.CityNode) float64 {
		return float64(n.Nights) * NightlyRate(n) * float64(t.Travelers)
	})
	return int(math.Round(transport + accommodation))
}

// NightlyRate returns the effective per-night rate for a node: the selected
// hotel offer's price when present, else the tier default. A selected offer
// keeps winning even after a bulk tier change, until cleared or replaced.
func NightlyRate(n domain.CityNode) float64 {
	if n.SelectedHotel != nil {
		return n.SelectedHotel.PricePerNight
	}
	return n.HotelTier.DefaultNightlyRate()
}
