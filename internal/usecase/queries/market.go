package queries

import (
	"context"

	"rental-market/internal/domain/booking"
	"rental-market/internal/domain/property"
	"rental-market/internal/infra/state"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound = errs.New("property not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrInvalidRange     = errs.New("invalid range")
)

// MarketQueries is the read-only operation set. Every call holds the
// aggregate read lock, so reads never observe a half-applied command.
type MarketQueries interface {
	Property(ctx context.Context, id uint64) (*PropertyView, error)
	MyProperties(ctx context.Context, owner uuid.UUID) ([]uint64, error)
	Booking(ctx context.Context, id uint64) (*BookingView, error)
	IsAvailable(ctx context.Context, propertyID uint64, at int64) (bool, error)
	AvailabilityRange(ctx context.Context, propertyID uint64, start, end int64) ([]bool, error)
	TotalCost(ctx context.Context, propertyID uint64, start, end int64) (int64, error)
	AvailableProperties(ctx context.Context, start, end, maxPrice int64) ([]uint64, error)
	PropertyBookings(ctx context.Context, propertyID uint64, onlyOpen bool) ([]uint64, error)
	Events(ctx context.Context, afterSeq uint64, limit int) ([]shared.Event, error)
}

type marketQueriesImpl struct {
	state   *state.MarketState
	journal shared.Journal
}

func NewMarketQueries(st *state.MarketState, journal shared.Journal) MarketQueries {
	return &marketQueriesImpl{state: st, journal: journal}
}

func (q *marketQueriesImpl) Property(_ context.Context, id uint64) (*PropertyView, error) {
	q.state.RLock()
	defer q.state.RUnlock()

	p, ok := q.state.Property(id)
	if !ok {
		return nil, ErrPropertyNotFound
	}
	return propertyViewOf(p), nil
}

func (q *marketQueriesImpl) MyProperties(_ context.Context, owner uuid.UUID) ([]uint64, error) {
	q.state.RLock()
	defer q.state.RUnlock()

	return q.state.OwnerProperties(owner), nil
}

func (q *marketQueriesImpl) Booking(_ context.Context, id uint64) (*BookingView, error) {
	q.state.RLock()
	defer q.state.RUnlock()

	b, ok := q.state.Booking(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return bookingViewOf(b), nil
}

func (q *marketQueriesImpl) IsAvailable(_ context.Context, propertyID uint64, at int64) (bool, error) {
	q.state.RLock()
	defer q.state.RUnlock()

	p, ok := q.state.Property(propertyID)
	if !ok {
		return false, ErrPropertyNotFound
	}
	return p.IsOpenOn(clock.DayIndex(at)), nil
}

func (q *marketQueriesImpl) AvailabilityRange(_ context.Context, propertyID uint64, start, end int64) ([]bool, error) {
	if start >= end {
		return nil, ErrInvalidRange
	}

	q.state.RLock()
	defer q.state.RUnlock()

	p, ok := q.state.Property(propertyID)
	if !ok {
		return nil, ErrPropertyNotFound
	}
	return p.AvailabilityRange(start, end), nil
}

func (q *marketQueriesImpl) TotalCost(_ context.Context, propertyID uint64, start, end int64) (int64, error) {
	if start >= end {
		return 0, ErrInvalidRange
	}

	q.state.RLock()
	defer q.state.RUnlock()

	p, ok := q.state.Property(propertyID)
	if !ok {
		return 0, ErrPropertyNotFound
	}
	return p.TotalCost(start, end), nil
}

// AvailableProperties scans all listings in ascending id order and keeps
// those within budget whose whole range is open. The result is sized to
// the matches, not the scan.
func (q *marketQueriesImpl) AvailableProperties(_ context.Context, start, end, maxPrice int64) ([]uint64, error) {
	if start >= end {
		return nil, ErrInvalidRange
	}
	startDay := clock.DayIndex(start)
	endDay := clock.DayIndex(end)

	q.state.RLock()
	defer q.state.RUnlock()

	matches := []uint64{}
	q.state.EachProperty(func(p *property.Property) bool {
		if p.PricePerNight() <= maxPrice && p.AllOpen(startDay, endDay) {
			matches = append(matches, p.ID())
		}
		return true
	})
	return matches, nil
}

// PropertyBookings returns a property's booking ids in insertion order,
// optionally narrowed to the still-open ones (Pending or PreApproved).
func (q *marketQueriesImpl) PropertyBookings(_ context.Context, propertyID uint64, onlyOpen bool) ([]uint64, error) {
	q.state.RLock()
	defer q.state.RUnlock()

	if _, ok := q.state.Property(propertyID); !ok {
		return nil, ErrPropertyNotFound
	}

	ids := q.state.PropertyBookings(propertyID)
	if !onlyOpen {
		return ids, nil
	}

	open := []uint64{}
	for _, id := range ids {
		b, ok := q.state.Booking(id)
		if !ok {
			continue
		}
		if s := b.Status(); s == booking.StatusPending || s == booking.StatusPreApproved {
			open = append(open, id)
		}
	}
	return open, nil
}

func (q *marketQueriesImpl) Events(ctx context.Context, afterSeq uint64, limit int) ([]shared.Event, error) {
	return q.journal.List(ctx, afterSeq, limit)
}

func propertyViewOf(p *property.Property) *PropertyView {
	return &PropertyView{
		ID:            p.ID(),
		Owner:         p.Owner(),
		PricePerNight: p.PricePerNight(),
		CreatedAt:     p.CreatedAt(),
	}
}

func bookingViewOf(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:         b.ID(),
		PropertyID: b.PropertyID(),
		Renter:     b.Renter(),
		StartDay:   b.StartDay(),
		EndDay:     b.EndDay(),
		Status:     b.Status().String(),
		TotalPrice: b.TotalPrice(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}
