package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventPropertyListed       EventKind = "PropertyListed"
	EventBookingRequested     EventKind = "BookingRequested"
	EventBookingStatusUpdated EventKind = "BookingStatusUpdated"
	EventAvailabilityUpdated  EventKind = "AvailabilityUpdated"
)

// Event is one entry in the append-only market journal. The journal is the
// externally durable audit trail beyond the state itself: one event per
// successful transition, in call order, never on a rejected call.
type Event struct {
	Seq        uint64    `json:"seq"`
	Kind       EventKind `json:"kind"`
	RecordedAt time.Time `json:"recorded_at"`

	PropertyID uint64    `json:"property_id,omitempty"`
	BookingID  uint64    `json:"booking_id,omitempty"`
	Actor      uuid.UUID `json:"actor,omitempty"`

	// Kind-dependent fields.
	Price    int64  `json:"price,omitempty"`
	StartDay int64  `json:"start_day,omitempty"`
	EndDay   int64  `json:"end_day,omitempty"`
	Status   string `json:"status,omitempty"`
	Open     *bool  `json:"open,omitempty"`
}

// Journal is the event sink and feed. Append assigns the sequence number;
// appends happen under the market write lock, so sequence order is call
// order.
type Journal interface {
	Append(ctx context.Context, ev Event) (uint64, error)
	List(ctx context.Context, afterSeq uint64, limit int) ([]Event, error)
}
