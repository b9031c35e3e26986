package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/voyageai/backend/internal/domain"
)

// OfferClient is a stand-in for the hotel-offers backend (modelled on the
// TBO Holidays search API). It synthesizes offers locally after a simulated
// network delay. The shape of the contract is the real one: callers must
// tolerate an empty list and an ErrOfferFetch failure, even though this
// implementation always produces three offers.
type OfferClient struct {
	latency time.Duration
}

// NewOfferClient constructs an OfferClient that responds after latency.
func NewOfferClient(latency time.Duration) *OfferClient {
	return &OfferClient{latency: latency}
}

// tierPricing anchors the synthetic offers: base nightly price and star
// rating per tier.
var tierPricing = map[domain.HotelTier]struct {
	base   float64
	rating float64
}{
	domain.TierLuxury:   {base: 450, rating: 5},
	domain.TierStandard: {base: 180, rating: 4},
	domain.TierBudget:   {base: 75, rating: 3},
}

// FetchHotelOffers returns offers for a city and tier, ordered by
// descending value. The simulated delay respects context cancellation:
// an abandoned request returns ErrOfferFetch wrapping ctx.Err() instead of
// completing late.
func (c *OfferClient) FetchHotelOffers(ctx context.Context, cityName string, tier domain.HotelTier) ([]domain.HotelOffer, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("gateway.OfferClient.FetchHotelOffers: %w: %w", ErrOfferFetch, ctx.Err())
	case <-time.After(c.latency):
	}

	pricing, ok := tierPricing[tier]
	if !ok {
		pricing = tierPricing[domain.TierStandard]
	}

	offers := []domain.HotelOffer{
		{
			Code:          offerCode(),
			Name:          fmt.Sprintf("%s %s Grand Hotel", cityName, tier),
			Rating:        pricing.rating,
			PricePerNight: pricing.base + float64(rand.Intn(50)),
			Currency:      "USD",
			Thumbnail:     "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=100&q=80",
			Description:   "Excellent location with premium curated amenities.",
		},
		{
			Code:          offerCode(),
			Name:          fmt.Sprintf("The %s Residency", cityName),
			Rating:        pricing.rating,
			PricePerNight: pricing.base - 20 + float64(rand.Intn(30)),
			Currency:      "USD",
			Thumbnail:     "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=100&q=80",
			Description:   "Best value offer for the current season.",
		},
		{
			Code:          offerCode(),
			Name:          fmt.Sprintf("City View %s Suites", cityName),
			Rating:        pricing.rating - 1,
			PricePerNight: pricing.base - 40 + float64(rand.Intn(20)),
			Currency:      "USD",
			Thumbnail:     "https://images.unsplash.com/photo-1551882547-ff43c63faf76?auto=format&fit=crop&w=100&q=80",
			Description:   "Modern minimalist design near transit hubs.",
		},
	}
	return offers, nil
}

const codeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// offerCode produces an opaque unique-enough offer code in the backend's
// "TBO-xxxxx" format. Code equality is the only selection key upstream.
func offerCode() string {
	b := make([]byte, 5)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return "TBO-" + string(b)
}
