package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayRange = errors.New("start day must be before end day")
	ErrInvalidStatus   = errors.New("transition not allowed from current status")
)

// Booking is one rental request moving through
// Pending → PreApproved → Confirmed → Completed, with Cancelled reachable
// from the first two states only. No transition skips forward or reverses.
// TotalPrice is computed once at request time and never recomputed, even if
// the property's nightly price changes afterwards.
type Booking struct {
	id         uint64
	propertyID uint64
	startDay   int64
	endDay     int64
	renter     uuid.UUID
	status     Status
	totalPrice int64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(id, propertyID uint64, startDay, endDay int64, renter uuid.UUID, totalPrice int64, createdAt time.Time) (*Booking, error) {
	if startDay >= endDay {
		return nil, ErrInvalidDayRange
	}
	return &Booking{
		id:         id,
		propertyID: propertyID,
		startDay:   startDay,
		endDay:     endDay,
		renter:     renter,
		status:     StatusPending,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  createdAt,
	}, nil
}

func (b *Booking) ID() uint64           { return b.id }
func (b *Booking) PropertyID() uint64   { return b.propertyID }
func (b *Booking) StartDay() int64      { return b.startDay }
func (b *Booking) EndDay() int64        { return b.endDay }
func (b *Booking) Renter() uuid.UUID    { return b.renter }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) TotalPrice() int64    { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsRentedBy(actor uuid.UUID) bool {
	return b.renter == actor
}

// EndedBy reports whether the stay is over at the given day index.
func (b *Booking) EndedBy(day int64) bool {
	return day >= b.endDay
}

// PreApprove moves Pending → PreApproved.
func (b *Booking) PreApprove(now time.Time) error {
	if b.status != StatusPending {
		return ErrInvalidStatus
	}
	b.setStatus(StatusPreApproved, now)
	return nil
}

// Confirm moves PreApproved → Confirmed. The caller must have already
// escrowed TotalPrice; the entity only records the flip.
func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPreApproved {
		return ErrInvalidStatus
	}
	b.setStatus(StatusConfirmed, now)
	return nil
}

// Complete moves Confirmed → Completed after payout succeeded.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrInvalidStatus
	}
	b.setStatus(StatusCompleted, now)
	return nil
}

// Cancel moves Pending or PreApproved → Cancelled and returns the status
// the booking held before the overwrite, so callers can release calendar
// days held by a pre-approval.
func (b *Booking) Cancel(now time.Time) (Status, error) {
	prior := b.status
	if !prior.IsCancellable() {
		return prior, ErrInvalidStatus
	}
	b.setStatus(StatusCancelled, now)
	return prior, nil
}

func (b *Booking) setStatus(s Status, now time.Time) {
	b.status = s
	b.updatedAt = now
}
