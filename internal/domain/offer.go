package domain

// HotelOffer is a priced lodging option quoted by the offer gateway for a
// city and tier. Code is the only equality key — two offers are the same
// selection if and only if their codes match.
//
// Offers are immutable once returned by the gateway: the planner copies them
// into a node's SelectedHotel and only ever replaces the reference, never
// mutates one in place.
type HotelOffer struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	PricePerNight float64 `json:"price_per_night"`
	Currency      string  `json:"currency"`
	Thumbnail     string  `json:"thumbnail"`
	Description   string  `json:"description"`
}
