package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyageai/backend/internal/domain"
	"github.com/voyageai/backend/internal/gateway"
	"github.com/voyageai/backend/internal/repo"
	"github.com/voyageai/backend/internal/service"
)

type mockRecommendationGateway struct {
	recommend func(ctx context.Context, cityName string) (domain.Recommendation, error)
}

func (m *mockRecommendationGateway) GetPlaceRecommendations(ctx context.Context, cityName string) (domain.Recommendation, error) {
	return m.recommend(ctx, cityName)
}

type mockOfferGateway struct {
	fetch func(ctx context.Context, cityName string, tier domain.HotelTier) ([]domain.HotelOffer, error)
}

func (m *mockOfferGateway) FetchHotelOffers(ctx context.Context, cityName string, tier domain.HotelTier) ([]domain.HotelOffer, error) {
	return m.fetch(ctx, cityName, tier)
}

var (
	_ service.RecommendationGateway = (*mockRecommendationGateway)(nil)
	_ service.OfferGateway          = (*mockOfferGateway)(nil)
)

func happyRecommendation() domain.Recommendation {
	return domain.Recommendation{
		Text: "Spend a morning in Gion before the crowds arrive.",
		Sources: []domain.GroundingSource{
			{Title: "Kyoto Travel Guide", URI: "https://example.com/kyoto"},
		},
	}
}

func happyOffers() []domain.HotelOffer {
	return []domain.HotelOffer{
		{Code: "TBO-aaaaa", Name: "Kyoto Grand Hotel", Rating: 4, PricePerNight: 180, Currency: "USD"},
		{Code: "TBO-bbbbb", Name: "The Kyoto Residency", Rating: 4, PricePerNight: 195, Currency: "USD"},
	}
}

// seedTrip stores a two-node trip and returns the repo plus the trip.
func seedTrip(t *testing.T) (repo.TripRepo, domain.Trip) {
	t.Helper()
	r := repo.NewTripRepo(time.Minute)
	trip := domain.Trip{
		ID:        uuid.New(),
		Travelers: 2,
		Nodes: []domain.CityNode{
			{ID: "n1", Name: "Kyoto", Nights: 2, HotelTier: domain.TierLuxury},
			{ID: "n2", Name: "Osaka", Nights: 3, HotelTier: domain.TierStandard},
		},
	}
	require.NoError(t, r.Save(context.Background(), trip))
	return r, trip
}

func TestPlaceService_NodeDetails(t *testing.T) {
	trips, trip := seedTrip(t)
	ai := &mockRecommendationGateway{
		recommend: func(_ context.Context, city string) (domain.Recommendation, error) {
			assert.Equal(t, "Kyoto", city)
			return happyRecommendation(), nil
		},
	}
	offers := &mockOfferGateway{
		fetch: func(_ context.Context, city string, tier domain.HotelTier) ([]domain.HotelOffer, error) {
			assert.Equal(t, "Kyoto", city)
			// The lookup carries the node's current tier, not a default.
			assert.Equal(t, domain.TierLuxury, tier)
			return happyOffers(), nil
		},
	}
	svc := service.NewPlaceService(trips, ai, offers, nil)

	got, err := svc.NodeDetails(context.Background(), trip.ID, "n1")

	require.NoError(t, err)
	require.NotNil(t, got.Recommendation)
	assert.Equal(t, happyRecommendation(), *got.Recommendation)
	assert.Equal(t, happyOffers(), got.Offers)
}

func TestPlaceService_NodeDetails_RecommendationFailureDegrades(t *testing.T) {
	trips, trip := seedTrip(t)
	ai := &mockRecommendationGateway{
		recommend: func(_ context.Context, _ string) (domain.Recommendation, error) {
			return domain.Recommendation{}, fmt.Errorf("gateway.AIClient.GetPlaceRecommendations: %w: boom", gateway.ErrRecommendation)
		},
	}
	offers := &mockOfferGateway{
		fetch: func(_ context.Context, _ string, _ domain.HotelTier) ([]domain.HotelOffer, error) {
			return happyOffers(), nil
		},
	}
	svc := service.NewPlaceService(trips, ai, offers, nil)

	got, err := svc.NodeDetails(context.Background(), trip.ID, "n1")

	require.NoError(t, err)
	assert.Nil(t, got.Recommendation)
	assert.Equal(t, happyOffers(), got.Offers)
}

func TestPlaceService_NodeDetails_OfferFailureDegrades(t *testing.T) {
	trips, trip := seedTrip(t)
	ai := &mockRecommendationGateway{
		recommend: func(_ context.Context, _ string) (domain.Recommendation, error) {
			return happyRecommendation(), nil
		},
	}
	offers := &mockOfferGateway{
		fetch: func(_ context.Context, _ string, _ domain.HotelTier) ([]domain.HotelOffer, error) {
			return nil, fmt.Errorf("gateway.OfferClient.FetchHotelOffers: %w: boom", gateway.ErrOfferFetch)
		},
	}
	svc := service.NewPlaceService(trips, ai, offers, nil)

	got, err := svc.NodeDetails(context.Background(), trip.ID, "n1")

	require.NoError(t, err)
	require.NotNil(t, got.Recommendation)
	// Offers degrade to an empty list, never nil, so the JSON stays [].
	assert.NotNil(t, got.Offers)
	assert.Empty(t, got.Offers)
}

func TestPlaceService_NodeDetails_UnknownNode(t *testing.T) {
	trips, trip := seedTrip(t)
	svc := service.NewPlaceService(trips, &mockRecommendationGateway{}, &mockOfferGateway{}, nil)

	_, err := svc.NodeDetails(context.Background(), trip.ID, "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceService_NodeDetails_UnknownTrip(t *testing.T) {
	trips, _ := seedTrip(t)
	svc := service.NewPlaceService(trips, &mockRecommendationGateway{}, &mockOfferGateway{}, nil)

	_, err := svc.NodeDetails(context.Background(), uuid.New(), "n1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
