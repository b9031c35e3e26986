// Package repo holds the storage layer for planning sessions.
// Trips live for the duration of one planning session only — there is no
// database, by design. Each resource has an interface and an in-memory
// implementation; no business logic lives here.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/voyageai/backend/internal/domain"
)

// TripRepo defines the storage operations for trip snapshots.
// The service layer depends on this interface, not the concrete cache
// implementation, which allows it to be unit-tested with a mock.
type TripRepo interface {
	// Save stores the trip snapshot under its ID, replacing any previous
	// snapshot and refreshing the session TTL.
	Save(ctx context.Context, trip domain.Trip) error

	// GetByID retrieves the current snapshot for a trip.
	// Returns domain.ErrNotFound if the trip does not exist or its
	// session has expired.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// Delete removes a trip. Deleting an absent trip is a no-op — the TTL
	// may already have evicted it.
	Delete(ctx context.Context, id string)
}

// cacheTripRepo is the go-cache implementation of TripRepo. go-cache gives
// per-key TTL with background eviction, which is exactly the lifecycle a
// planning session needs: abandoned trips disappear on their own.
type cacheTripRepo struct {
	cache *gocache.Cache
}

// NewTripRepo constructs an in-memory TripRepo whose sessions expire after
// ttl of inactivity. Expired entries are swept at twice the ttl.
func NewTripRepo(ttl time.Duration) TripRepo {
	return &cacheTripRepo{cache: gocache.New(ttl, 2*ttl)}
}

// Save stores a value copy of the trip. Callers hand over ownership of the
// snapshot's slices; transforms in domain always allocate fresh ones.
func (r *cacheTripRepo) Save(_ context.Context, trip domain.Trip) error {
	if trip.ID == uuid.Nil {
		return fmt.Errorf("repo.cacheTripRepo.Save: trip has no id")
	}
	r.cache.SetDefault(trip.ID.String(), trip)
	return nil
}

func (r *cacheTripRepo) GetByID(_ context.Context, id string) (domain.Trip, error) {
	v, ok := r.cache.Get(id)
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.cacheTripRepo.GetByID: %w", domain.ErrNotFound)
	}
	trip, ok := v.(domain.Trip)
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.cacheTripRepo.GetByID: unexpected entry type %T", v)
	}
	return trip, nil
}

func (r *cacheTripRepo) Delete(_ context.Context, id string) {
	r.cache.Delete(id)
}
