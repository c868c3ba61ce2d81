// Package state holds the in-memory market aggregate. Every mutating
// operation runs to completion before the next begins: the command side
// holds the write lock across an entire operation (guards, external ledger
// call, mutation, event append), the query side holds the read lock.
package state

import (
	"sync"

	"rental-market/internal/domain/booking"
	"rental-market/internal/domain/property"

	"github.com/google/uuid"
)

type MarketState struct {
	sync.RWMutex

	properties map[uint64]*property.Property
	bookings   map[uint64]*booking.Booking

	// listing-order indexes
	ownerProperties  map[uuid.UUID][]uint64
	propertyBookings map[uint64][]uint64

	nextPropertyID uint64
	nextBookingID  uint64
}

func NewMarketState() *MarketState {
	return &MarketState{
		properties:       make(map[uint64]*property.Property),
		bookings:         make(map[uint64]*booking.Booking),
		ownerProperties:  make(map[uuid.UUID][]uint64),
		propertyBookings: make(map[uint64][]uint64),
		nextPropertyID:   1,
		nextBookingID:    1,
	}
}

// All accessors below assume the caller holds the appropriate lock.

// AllocatePropertyID hands out the next sequential property id. Ids start
// at 1 and are never reused.
func (s *MarketState) AllocatePropertyID() uint64 {
	id := s.nextPropertyID
	s.nextPropertyID++
	return id
}

func (s *MarketState) AllocateBookingID() uint64 {
	id := s.nextBookingID
	s.nextBookingID++
	return id
}

func (s *MarketState) PutProperty(p *property.Property) {
	s.properties[p.ID()] = p
	s.ownerProperties[p.Owner()] = append(s.ownerProperties[p.Owner()], p.ID())
}

func (s *MarketState) Property(id uint64) (*property.Property, bool) {
	p, ok := s.properties[id]
	return p, ok
}

func (s *MarketState) PutBooking(b *booking.Booking) {
	s.bookings[b.ID()] = b
	s.propertyBookings[b.PropertyID()] = append(s.propertyBookings[b.PropertyID()], b.ID())
}

func (s *MarketState) Booking(id uint64) (*booking.Booking, bool) {
	b, ok := s.bookings[id]
	return b, ok
}

// OwnerProperties returns property ids in listing order for an owner.
func (s *MarketState) OwnerProperties(owner uuid.UUID) []uint64 {
	ids := s.ownerProperties[owner]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out
}

// PropertyBookings returns booking ids for a property in insertion order.
func (s *MarketState) PropertyBookings(propertyID uint64) []uint64 {
	ids := s.propertyBookings[propertyID]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out
}

// EachProperty visits properties in ascending id order. The visitor
// returns false to stop early.
func (s *MarketState) EachProperty(visit func(*property.Property) bool) {
	for id := uint64(1); id < s.nextPropertyID; id++ {
		p, ok := s.properties[id]
		if !ok {
			continue
		}
		if !visit(p) {
			return
		}
	}
}

// TotalProperties is the global listed-property counter.
func (s *MarketState) TotalProperties() uint64 {
	return s.nextPropertyID - 1
}

// TotalBookings is the global booking counter.
func (s *MarketState) TotalBookings() uint64 {
	return s.nextBookingID - 1
}
