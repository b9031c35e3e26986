package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingConfirmation is the receipt for a mock-confirmed trip. There is no
// real inventory or payment behind it — the reference code is generated
// locally and the totals are frozen from the trip snapshot at confirm time.
type BookingConfirmation struct {
	Reference   string    `json:"reference"`
	TripID      uuid.UUID `json:"trip_id"`
	Travelers   int       `json:"travelers"`
	TotalCost   int       `json:"total_cost"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
