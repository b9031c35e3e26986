package domain

// GroundingSource is a maps/web citation backing a recommendation.
// Sources without a URI are dropped by the gateway before they reach here.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Recommendation is the AI's free-text write-up for a city plus its
// grounding citations. It is returned to the client for the selection
// sidebar and is never stored on the trip.
type Recommendation struct {
	Text    string            `json:"text"`
	Sources []GroundingSource `json:"sources"`
}
