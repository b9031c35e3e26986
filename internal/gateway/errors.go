// Package gateway contains the clients for the external collaborators:
// the generative AI service (itinerary generation, place recommendations,
// optimization) and the hotel-offers backend. Each call is one-shot
// request/response — no streaming, no partial results, and no automatic
// retries; retry policy belongs to the user-facing layer.
package gateway

import "errors"

// Sentinel errors for the four external-call failure classes. All mean
// "the external dependency failed or returned an unusable payload"; none
// are recoverable automatically. Handlers map them to HTTP 502.
var (
	ErrGeneration     = errors.New("itinerary generation failed")
	ErrRecommendation = errors.New("place recommendation failed")
	ErrOptimization   = errors.New("trip optimization failed")
	ErrOfferFetch     = errors.New("hotel offer fetch failed")
)
