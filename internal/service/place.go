package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/voyageai/backend/internal/domain"
	"github.com/voyageai/backend/internal/repo"
)

// RecommendationGateway defines the AI recommendation lookup the place
// service depends on.
type RecommendationGateway interface {
	GetPlaceRecommendations(ctx context.Context, cityName string) (domain.Recommendation, error)
}

// OfferGateway defines the hotel-offer lookup the place service depends on.
type OfferGateway interface {
	FetchHotelOffers(ctx context.Context, cityName string, tier domain.HotelTier) ([]domain.HotelOffer, error)
}

// PlaceService assembles the selection-sidebar data for one stop. It reads
// trip state but never writes it — recommendations and offers are returned
// to the client and discarded server-side.
type PlaceService struct {
	trips  repo.TripRepo
	ai     RecommendationGateway
	offers OfferGateway
	log    *slog.Logger
}

// NewPlaceService constructs a PlaceService. A nil logger falls back to
// slog.Default().
func NewPlaceService(trips repo.TripRepo, ai RecommendationGateway, offers OfferGateway, log *slog.Logger) *PlaceService {
	if log == nil {
		log = slog.Default()
	}
	return &PlaceService{trips: trips, ai: ai, offers: offers, log: log}
}

// NodeDetails fetches the recommendation write-up and hotel offers for one
// stop, issued together and awaited jointly. The offer lookup is keyed by
// the node's city and its current tier.
//
// A failure in either leg degrades that section to empty instead of failing
// the whole lookup: the sidebar shows what arrived. Only an unknown trip or
// node id is an error.
func (s *PlaceService) NodeDetails(ctx context.Context, tripID uuid.UUID, nodeID string) (domain.PlaceDetails, error) {
	trip, err := s.trips.GetByID(ctx, tripID.String())
	if err != nil {
		return domain.PlaceDetails{}, fmt.Errorf("service.PlaceService.NodeDetails: %w", err)
	}
	node, found := lo.Find(trip.Nodes, func(n domain.CityNode) bool {
		return n.ID == nodeID
	})
	if !found {
		return domain.PlaceDetails{}, fmt.Errorf("service.PlaceService.NodeDetails: %w", domain.ErrNotFound)
	}

	var (
		rec       domain.Recommendation
		recErr    error
		offers    []domain.HotelOffer
		offersErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec, recErr = s.ai.GetPlaceRecommendations(gctx, node.Name)
		return nil
	})
	g.Go(func() error {
		offers, offersErr = s.offers.FetchHotelOffers(gctx, node.Name, node.HotelTier)
		return nil
	})
	// Both closures return nil: a failed leg must not cancel the other.
	_ = g.Wait()

	details := domain.PlaceDetails{Offers: []domain.HotelOffer{}}
	if recErr != nil {
		s.log.WarnContext(ctx, "place recommendations unavailable", "city", node.Name, "error", recErr)
	} else {
		details.Recommendation = &rec
	}
	if offersErr != nil {
		s.log.WarnContext(ctx, "hotel offers unavailable", "city", node.Name, "error", offersErr)
	} else if offers != nil {
		details.Offers = offers
	}
	return details, nil
}
