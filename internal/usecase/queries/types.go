package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type PropertyView struct {
	ID            uint64    `json:"id"`
	Owner         uuid.UUID `json:"owner"`
	PricePerNight int64     `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingView struct {
	ID         uint64    `json:"id"`
	PropertyID uint64    `json:"property_id"`
	Renter     uuid.UUID `json:"renter"`
	StartDay   int64     `json:"start_day"`
	EndDay     int64     `json:"end_day"`
	Status     string    `json:"status"`
	TotalPrice int64     `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
