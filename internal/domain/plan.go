package domain

// PlanRequest is the user's input for a new trip: where, when, how many,
// and an optional free-text intent forwarded verbatim to the AI. Dates are
// opaque strings here for the same reason they are on Trip.
type PlanRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Travelers   int    `json:"travelers"`
	Intent      string `json:"intent,omitempty"`
}
