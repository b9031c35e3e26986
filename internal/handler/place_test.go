package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyageai/backend/internal/domain"
	"github.com/voyageai/backend/internal/handler"
)

type mockPlaceService struct {
	nodeDetails func(ctx context.Context, tripID uuid.UUID, nodeID string) (domain.PlaceDetails, error)
}

func (m *mockPlaceService) NodeDetails(ctx context.Context, tripID uuid.UUID, nodeID string) (domain.PlaceDetails, error) {
	return m.nodeDetails(ctx, tripID, nodeID)
}

var _ handler.PlaceServicer = (*mockPlaceService)(nil)

func detailsRequest(t *testing.T, places handler.PlaceServicer, tripID, nodeID string) *httptest.ResponseRecorder {
	t.Helper()
	srv := handler.NewServer(&mockTripService{}, places)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID+"/nodes/"+nodeID+"/details", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}

func TestGetNodeDetails(t *testing.T) {
	tripID := uuid.New()
	details := domain.PlaceDetails{
		Recommendation: &domain.Recommendation{
			Text:    "Stay near the station.",
			Sources: []domain.GroundingSource{{Title: "Guide", URI: "https://example.com"}},
		},
		Offers: []domain.HotelOffer{
			{Code: "TBO-aaaaa", Name: "Kyoto Grand Hotel", Rating: 4, PricePerNight: 180, Currency: "USD"},
		},
	}
	places := &mockPlaceService{
		nodeDetails: func(_ context.Context, gotTrip uuid.UUID, gotNode string) (domain.PlaceDetails, error) {
			assert.Equal(t, tripID, gotTrip)
			assert.Equal(t, "n1", gotNode)
			return details, nil
		},
	}

	rec := detailsRequest(t, places, tripID.String(), "n1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.PlaceDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, details, got)
}

func TestGetNodeDetails_DegradedSectionsStillOK(t *testing.T) {
	places := &mockPlaceService{
		nodeDetails: func(_ context.Context, _ uuid.UUID, _ string) (domain.PlaceDetails, error) {
			return domain.PlaceDetails{Offers: []domain.HotelOffer{}}, nil
		},
	}

	rec := detailsRequest(t, places, uuid.NewString(), "n1")

	assert.Equal(t, http.StatusOK, rec.Code)
	// No recommendation key at all, offers present but empty.
	assert.NotContains(t, rec.Body.String(), "recommendation")
	assert.Contains(t, rec.Body.String(), `"offers":[]`)
}

func TestGetNodeDetails_UnknownNode(t *testing.T) {
	places := &mockPlaceService{
		nodeDetails: func(_ context.Context, _ uuid.UUID, _ string) (domain.PlaceDetails, error) {
			return domain.PlaceDetails{}, fmt.Errorf("service.PlaceService.NodeDetails: %w", domain.ErrNotFound)
		},
	}

	rec := detailsRequest(t, places, uuid.NewString(), "ghost")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNodeDetails_MalformedTripID(t *testing.T) {
	rec := detailsRequest(t, &mockPlaceService{}, "nope", "n1")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
