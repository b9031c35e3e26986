package domain

// TransportMode describes how a leg is traveled. Purely descriptive — the
// cost engine reads the edge's Cost field, never the mode.
type TransportMode string

const (
	ModeFlight TransportMode = "Flight"
	ModeTrain  TransportMode = "Train"
	ModeBus    TransportMode = "Bus"
	ModeCab    TransportMode = "Cab"
)

// Valid reports whether m is one of the four known transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case ModeFlight, ModeTrain, ModeBus, ModeCab:
		return true
	}
	return false
}

// TransportEdge is a directed leg between two stops. FromID and ToID
// reference node ids within the same trip; the generator guarantees that by
// construction and the planner does not re-validate it on every mutation.
//
// Duration is a human-readable string ("4h 30m") treated as opaque — it is
// never parsed for arithmetic. Cost is trip-wide, not per traveler.
type TransportEdge struct {
	ID       string        `json:"id"`
	FromID   string        `json:"from_id"`
	ToID     string        `json:"to_id"`
	Mode     TransportMode `json:"mode"`
	Duration string        `json:"duration"`
	Cost     float64       `json:"cost"`
}

// EdgePatch is a partial update to a TransportEdge. Nil fields are left
// untouched; set fields replace the edge's value wholesale.
type EdgePatch struct {
	Mode     *TransportMode `json:"mode,omitempty"`
	Duration *string        `json:"duration,omitempty"`
	Cost     *float64       `json:"cost,omitempty"`
}

// Apply returns a copy of the edge with the patch merged in.
func (e TransportEdge) Apply(patch EdgePatch) TransportEdge {
	if patch.Mode != nil {
		e.Mode = *patch.Mode
	}
	if patch.Duration != nil {
		e.Duration = *patch.Duration
	}
	if patch.Cost != nil {
		e.Cost = *patch.Cost
	}
	return e
}
