package commands

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.
type BookingSnapshot struct {
	ID         uint64
	PropertyID uint64
	Renter     uuid.UUID
	StartDay   int64
	EndDay     int64
	Status     string
	TotalPrice int64
	CreatedAt  time.Time
}

type PropertySnapshot struct {
	ID            uint64
	Owner         uuid.UUID
	PricePerNight int64
	CreatedAt     time.Time
}
