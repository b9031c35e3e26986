package domain

// HotelTier is the coarse lodging quality bucket for a stop. The tier sets
// the default nightly rate used by the cost engine whenever no explicit
// hotel offer has been selected for the node.
type HotelTier string

const (
	TierBudget   HotelTier = "Budget"
	TierStandard HotelTier = "Standard"
	TierLuxury   HotelTier = "Luxury"
)

// Valid reports whether t is one of the three known tiers.
func (t HotelTier) Valid() bool {
	switch t {
	case TierBudget, TierStandard, TierLuxury:
		return true
	}
	return false
}

// DefaultNightlyRate returns the per-night, per-traveler rate used when a
// node has no selected hotel offer. Unknown tiers fall back to the Budget
// rate; callers are expected to validate tiers at the input boundary.
func (t HotelTier) DefaultNightlyRate() float64 {
	switch t {
	case TierLuxury:
		return 500
	case TierStandard:
		return 200
	default:
		return 100
	}
}

// Coordinates is an optional lat/lng pair attached to a node by the
// itinerary generator. Purely informational — nothing in the planner does
// geometry on it.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CityNode is a single stop in the itinerary. ID is assigned by the
// itinerary generator at creation time, is unique within the trip, and is
// never reassigned — it is the key the optimizer merge matches on.
//
// Invariant: Nights >= 1 at all times. Patches that would take it lower are
// clamped, never allowed to produce zero or a negative.
type CityNode struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Nights        int          `json:"nights"`
	HotelTier     HotelTier    `json:"hotel_tier"`
	SelectedHotel *HotelOffer  `json:"selected_hotel,omitempty"`
	MealPlan      string       `json:"meal_plan"`
	Experiences   []string     `json:"experiences"`
	Description   string       `json:"description"`
	ImageURL      string       `json:"image_url,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty"`
}

// NodePatch is a partial update to a CityNode. Nil fields are left
// untouched; set fields replace the node's value wholesale (shallow merge).
// ClearSelectedHotel removes the current offer selection and takes
// precedence over SelectedHotel when both are set.
type NodePatch struct {
	Name               *string    `json:"name,omitempty"`
	Nights             *int       `json:"nights,omitempty"`
	HotelTier          *HotelTier `json:"hotel_tier,omitempty"`
	SelectedHotel      *HotelOffer `json:"selected_hotel,omitempty"`
	ClearSelectedHotel bool       `json:"clear_selected_hotel,omitempty"`
	MealPlan           *string    `json:"meal_plan,omitempty"`
}

// Apply returns a copy of the node with the patch merged in.
// Nights are clamped to the >= 1 invariant.
func (n CityNode) Apply(patch NodePatch) CityNode {
	if patch.Name != nil {
		n.Name = *patch.Name
	}
	if patch.Nights != nil {
		n.Nights = clampNights(*patch.Nights)
	}
	if patch.HotelTier != nil {
		n.HotelTier = *patch.HotelTier
	}
	switch {
	case patch.ClearSelectedHotel:
		n.SelectedHotel = nil
	case patch.SelectedHotel != nil:
		offer := *patch.SelectedHotel
		n.SelectedHotel = &offer
	}
	if patch.MealPlan != nil {
		n.MealPlan = *patch.MealPlan
	}
	return n
}

// clampNights enforces the nights >= 1 invariant shared by node patches and
// optimizer merges.
func clampNights(nights int) int {
	if nights < 1 {
		return 1
	}
	return nights
}
