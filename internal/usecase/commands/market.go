package commands

import (
	"context"
	"log/slog"

	"rental-market/internal/domain/booking"
	"rental-market/internal/domain/property"
	"rental-market/internal/infra/state"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange     = errs.New("invalid range")
	ErrPropertyNotFound = errs.New("property not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrNotAuthorized    = errs.New("caller not authorized")
	ErrOwnProperty      = errs.New("owner cannot book own property")
	ErrDaysUnavailable  = errs.New("requested days are not available")
	ErrInvalidState     = errs.New("booking status does not allow transition")
	ErrNotYetDue        = errs.New("stay has not ended yet")
	ErrPaymentFailed    = errs.New("payment failed")
	ErrNegativePrice    = errs.New("price cannot be negative")
)

// MarketCommands is the mutating operation set of the rental market. Every
// call executes atomically: the implementation holds the aggregate write
// lock from the first guard to the event append, so no operation ever
// observes another's partial effect. Guard failures mutate nothing and
// emit nothing.
type MarketCommands interface {
	ListProperty(ctx context.Context, owner uuid.UUID, pricePerNight int64) (uint64, error)
	SetAvailability(ctx context.Context, caller uuid.UUID, propertyID uint64, start, end int64, open bool) error
	RequestBooking(ctx context.Context, renter uuid.UUID, propertyID uint64, start, end int64) (*BookingSnapshot, error)
	PreApproveBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error
	ConfirmBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error
	CompleteBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error
	CancelBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error
}

type marketCommandsImpl struct {
	state   *state.MarketState
	ledger  shared.TokenLedger
	journal shared.Journal
	clock   clock.Clock
}

func NewMarketCommands(
	st *state.MarketState,
	ledger shared.TokenLedger,
	journal shared.Journal,
	clk clock.Clock,
) MarketCommands {
	return &marketCommandsImpl{
		state:   st,
		ledger:  ledger,
		journal: journal,
		clock:   clk,
	}
}

func (m *marketCommandsImpl) ListProperty(ctx context.Context, owner uuid.UUID, pricePerNight int64) (uint64, error) {
	m.state.Lock()
	defer m.state.Unlock()

	id := m.state.AllocatePropertyID()
	p, err := property.NewProperty(id, owner, pricePerNight, m.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrNegativePrice)
	}
	m.state.PutProperty(p)

	m.appendEvent(ctx, shared.Event{
		Kind:       shared.EventPropertyListed,
		PropertyID: id,
		Actor:      owner,
		Price:      pricePerNight,
	})
	return id, nil
}

func (m *marketCommandsImpl) SetAvailability(ctx context.Context, caller uuid.UUID, propertyID uint64, start, end int64, open bool) error {
	if start >= end {
		return ErrInvalidRange
	}

	m.state.Lock()
	defer m.state.Unlock()

	p, ok := m.state.Property(propertyID)
	if !ok {
		return ErrPropertyNotFound
	}
	if !p.IsOwnedBy(caller) {
		return ErrNotAuthorized
	}
	if err := p.SetAvailability(start, end, open); err != nil {
		return errs.Mark(err, ErrInvalidRange)
	}

	m.appendEvent(ctx, shared.Event{
		Kind:       shared.EventAvailabilityUpdated,
		PropertyID: propertyID,
		Actor:      caller,
		StartDay:   clock.DayIndex(start),
		EndDay:     clock.DayIndex(end),
		Open:       &open,
	})
	return nil
}

// RequestBooking creates a Pending booking. It deliberately does not close
// the requested days: several pending requests may overlap the same dates,
// and nothing arbitrates between them until the owner pre-approves one.
func (m *marketCommandsImpl) RequestBooking(ctx context.Context, renter uuid.UUID, propertyID uint64, start, end int64) (*BookingSnapshot, error) {
	if start >= end {
		return nil, ErrInvalidRange
	}
	startDay := clock.DayIndex(start)
	endDay := clock.DayIndex(end)
	if startDay >= endDay {
		return nil, ErrInvalidRange
	}

	m.state.Lock()
	defer m.state.Unlock()

	p, ok := m.state.Property(propertyID)
	if !ok {
		return nil, ErrPropertyNotFound
	}
	if p.IsOwnedBy(renter) {
		return nil, ErrOwnProperty
	}
	if !p.AllOpen(startDay, endDay) {
		return nil, ErrDaysUnavailable
	}

	// Price is fixed here and never recomputed, even if the nightly price
	// changes later. Whole nights only: partial days floor away.
	totalPrice := p.TotalCost(start, end)

	id := m.state.AllocateBookingID()
	b, err := booking.NewBooking(id, propertyID, startDay, endDay, renter, totalPrice, m.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	m.state.PutBooking(b)

	m.appendEvent(ctx, shared.Event{
		Kind:       shared.EventBookingRequested,
		BookingID:  id,
		PropertyID: propertyID,
		Actor:      renter,
		StartDay:   startDay,
		EndDay:     endDay,
		Price:      totalPrice,
	})
	return snapshotOf(b), nil
}

// PreApproveBooking is the owner accepting one pending request. The booked
// days come off the calendar here, so later requests for them fail and rival
// pending requests can no longer be pre-approved.
func (m *marketCommandsImpl) PreApproveBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error {
	m.state.Lock()
	defer m.state.Unlock()

	b, p, err := m.bookingWithProperty(bookingID)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(caller) {
		return ErrNotAuthorized
	}
	if b.Status() != booking.StatusPending {
		return ErrInvalidState
	}
	if !p.AllOpen(b.StartDay(), b.EndDay()) {
		// Another booking took some of these days since the request.
		return ErrDaysUnavailable
	}

	if err := b.PreApprove(m.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidState)
	}
	if err := p.SetAvailabilityDays(b.StartDay(), b.EndDay(), false); err != nil {
		// Day range was validated at creation; closing cannot fail.
		slog.Error("failed to close pre-approved days",
			"booking_id", b.ID(), "error", err)
	}

	m.appendStatusEvent(ctx, b)
	return nil
}

// ConfirmBooking escrows the total price from the renter into market
// custody and flips PreApproved → Confirmed. The pull happens before the
// status flip: if the ledger rejects it, nothing changed locally.
func (m *marketCommandsImpl) ConfirmBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error {
	m.state.Lock()
	defer m.state.Unlock()

	b, _, err := m.bookingWithProperty(bookingID)
	if err != nil {
		return err
	}
	if !b.IsRentedBy(caller) {
		return ErrNotAuthorized
	}
	if b.Status() != booking.StatusPreApproved {
		return ErrInvalidState
	}

	if err := m.ledger.TransferFrom(ctx, b.Renter(), b.TotalPrice()); err != nil {
		return errs.Mark(err, ErrPaymentFailed)
	}
	if err := b.Confirm(m.clock.Now()); err != nil {
		// Unreachable: status was checked above and the lock is held.
		return errs.Mark(err, ErrInvalidState)
	}

	m.appendStatusEvent(ctx, b)
	return nil
}

// CompleteBooking settles a due booking, paying custody funds out to the
// property owner. Deliberately permissionless: once the stay has ended any
// caller may trigger the payout. A ledger failure leaves the booking
// Confirmed, so the same call can be retried.
func (m *marketCommandsImpl) CompleteBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error {
	_ = caller // settlement is open to anyone

	m.state.Lock()
	defer m.state.Unlock()

	b, p, err := m.bookingWithProperty(bookingID)
	if err != nil {
		return err
	}
	if b.Status() != booking.StatusConfirmed {
		return ErrInvalidState
	}
	if !b.EndedBy(clock.Today(m.clock)) {
		return ErrNotYetDue
	}

	if err := m.ledger.Transfer(ctx, p.Owner(), b.TotalPrice()); err != nil {
		return errs.Mark(err, ErrPaymentFailed)
	}
	if err := b.Complete(m.clock.Now()); err != nil {
		return errs.Mark(err, ErrInvalidState)
	}

	m.appendStatusEvent(ctx, b)
	return nil
}

// CancelBooking voids a Pending or PreApproved booking. No funds move:
// nothing was escrowed before Confirmed. When the pre-cancel status was
// PreApproved the booking's day range is re-opened on the calendar; a
// Pending cancel leaves the calendar untouched since a pending request
// never closed anything.
func (m *marketCommandsImpl) CancelBooking(ctx context.Context, caller uuid.UUID, bookingID uint64) error {
	m.state.Lock()
	defer m.state.Unlock()

	b, p, err := m.bookingWithProperty(bookingID)
	if err != nil {
		return err
	}
	if !b.IsRentedBy(caller) && !p.IsOwnedBy(caller) {
		return ErrNotAuthorized
	}

	prior, err := b.Cancel(m.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrInvalidState)
	}
	if prior == booking.StatusPreApproved {
		if err := p.SetAvailabilityDays(b.StartDay(), b.EndDay(), true); err != nil {
			// Day range was validated at creation; re-opening cannot fail.
			slog.Error("failed to re-open cancelled days",
				"booking_id", b.ID(), "error", err)
		}
	}

	m.appendStatusEvent(ctx, b)
	return nil
}

func (m *marketCommandsImpl) bookingWithProperty(bookingID uint64) (*booking.Booking, *property.Property, error) {
	b, ok := m.state.Booking(bookingID)
	if !ok {
		return nil, nil, ErrBookingNotFound
	}
	p, ok := m.state.Property(b.PropertyID())
	if !ok {
		// A booking always references a listed property; ids are never reused.
		return nil, nil, ErrPropertyNotFound
	}
	return b, p, nil
}

func (m *marketCommandsImpl) appendStatusEvent(ctx context.Context, b *booking.Booking) {
	m.appendEvent(ctx, shared.Event{
		Kind:      shared.EventBookingStatusUpdated,
		BookingID: b.ID(),
		Status:    b.Status().String(),
	})
}

func (m *marketCommandsImpl) appendEvent(ctx context.Context, ev shared.Event) {
	ev.RecordedAt = m.clock.Now()
	if _, err := m.journal.Append(ctx, ev); err != nil {
		// The state change already committed; losing the journal entry is
		// an observability gap, not a consistency one.
		slog.Warn("failed to append market event", "kind", ev.Kind, "error", err)
	}
}

func snapshotOf(b *booking.Booking) *BookingSnapshot {
	return &BookingSnapshot{
		ID:         b.ID(),
		PropertyID: b.PropertyID(),
		Renter:     b.Renter(),
		StartDay:   b.StartDay(),
		EndDay:     b.EndDay(),
		Status:     b.Status().String(),
		TotalPrice: b.TotalPrice(),
		CreatedAt:  b.CreatedAt(),
	}
}
