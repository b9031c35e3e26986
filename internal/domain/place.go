package domain

// PlaceDetails is the selection-sidebar projection for one stop: the AI's
// recommendation write-up and the current hotel offers for the node's city
// and tier. It is assembled per request and never stored on the trip.
//
// Either section may be absent: a failed recommendation or offer fetch
// leaves its section empty rather than failing the whole lookup.
type PlaceDetails struct {
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Offers         []HotelOffer    `json:"offers"`
}
