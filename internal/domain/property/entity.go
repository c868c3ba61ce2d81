package property

import (
	"errors"
	"time"

	"rental-market/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrNegativePrice = errors.New("price per night cannot be negative")

// Property is a listed rental unit. The owner never changes and the id is
// never reused. Each property exclusively owns its calendar: all outside
// access goes through the entity's availability methods.
type Property struct {
	id            uint64
	owner         uuid.UUID
	pricePerNight int64
	calendar      *Calendar
	createdAt     time.Time
}

// NewProperty creates a listing with an all-closed calendar. A zero price
// is legal; listings are allowed to be free.
func NewProperty(id uint64, owner uuid.UUID, pricePerNight int64, createdAt time.Time) (*Property, error) {
	if pricePerNight < 0 {
		return nil, ErrNegativePrice
	}
	return &Property{
		id:            id,
		owner:         owner,
		pricePerNight: pricePerNight,
		calendar:      NewCalendar(),
		createdAt:     createdAt,
	}, nil
}

func (p *Property) ID() uint64           { return p.id }
func (p *Property) Owner() uuid.UUID     { return p.owner }
func (p *Property) PricePerNight() int64 { return p.pricePerNight }
func (p *Property) CreatedAt() time.Time { return p.createdAt }

func (p *Property) IsOwnedBy(actor uuid.UUID) bool {
	return p.owner == actor
}

// SetAvailability delegates to the calendar over day indexes derived from
// the Unix-second range [start, end).
func (p *Property) SetAvailability(start, end int64, open bool) error {
	return p.calendar.SetRange(clock.DayIndex(start), clock.DayIndex(end), open)
}

// SetAvailabilityDays operates directly on day indexes.
func (p *Property) SetAvailabilityDays(startDay, endDay int64, open bool) error {
	return p.calendar.SetRange(startDay, endDay, open)
}

func (p *Property) IsOpenOn(day int64) bool {
	return p.calendar.IsOpen(day)
}

func (p *Property) AllOpen(startDay, endDay int64) bool {
	return p.calendar.AllOpen(startDay, endDay)
}

// AvailabilityRange returns one boolean per whole day in the Unix-second
// range [start, end). The count floors to whole days, matching pricing.
func (p *Property) AvailabilityRange(start, end int64) []bool {
	return p.calendar.QueryRange(clock.DayIndex(start), clock.Nights(start, end))
}

// TotalCost prices the Unix-second range [start, end) by whole nights.
// A range shorter than a day prices at zero.
func (p *Property) TotalCost(start, end int64) int64 {
	return p.pricePerNight * clock.Nights(start, end)
}
