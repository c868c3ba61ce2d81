//go:build unit

package booking_test

import (
	"testing"
	"time"

	"rental-market/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(1, 1, 10, 12, uuid.New(), 200, time.Unix(0, 0))
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		b := newBooking(t)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, b.CreatedAt(), b.UpdatedAt())
	})

	t.Run("rejects empty and inverted day ranges", func(t *testing.T) {
		_, err := booking.NewBooking(1, 1, 10, 10, uuid.New(), 0, time.Unix(0, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidDayRange)

		_, err = booking.NewBooking(1, 1, 12, 10, uuid.New(), 0, time.Unix(0, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidDayRange)
	})
}

func TestBookingTransitions(t *testing.T) {
	now := time.Unix(1000, 0)

	t.Run("full lifecycle in order", func(t *testing.T) {
		b := newBooking(t)

		require.NoError(t, b.PreApprove(now))
		assert.Equal(t, booking.StatusPreApproved, b.Status())

		require.NoError(t, b.Confirm(now))
		assert.Equal(t, booking.StatusConfirmed, b.Status())

		require.NoError(t, b.Complete(now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
		assert.Equal(t, now, b.UpdatedAt())
	})

	t.Run("no skipping forward", func(t *testing.T) {
		b := newBooking(t)

		assert.ErrorIs(t, b.Confirm(now), booking.ErrInvalidStatus)
		assert.ErrorIs(t, b.Complete(now), booking.ErrInvalidStatus)
	})

	t.Run("no reversing", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.PreApprove(now))
		require.NoError(t, b.Confirm(now))

		assert.ErrorIs(t, b.PreApprove(now), booking.ErrInvalidStatus)
		assert.ErrorIs(t, b.Confirm(now), booking.ErrInvalidStatus)
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.PreApprove(now))
		require.NoError(t, b.Confirm(now))
		require.NoError(t, b.Complete(now))

		assert.ErrorIs(t, b.PreApprove(now), booking.ErrInvalidStatus)
		assert.ErrorIs(t, b.Confirm(now), booking.ErrInvalidStatus)
		assert.ErrorIs(t, b.Complete(now), booking.ErrInvalidStatus)
		_, err := b.Cancel(now)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}

func TestBookingCancel(t *testing.T) {
	now := time.Unix(1000, 0)

	t.Run("cancel from pending reports pending", func(t *testing.T) {
		b := newBooking(t)

		prior, err := b.Cancel(now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, prior)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancel from pre-approved reports pre-approved", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.PreApprove(now))

		prior, err := b.Cancel(now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPreApproved, prior)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("cancel after confirmation is rejected", func(t *testing.T) {
		b := newBooking(t)
		require.NoError(t, b.PreApprove(now))
		require.NoError(t, b.Confirm(now))

		_, err := b.Cancel(now)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})
}

func TestBookingEndedBy(t *testing.T) {
	b := newBooking(t)

	assert.False(t, b.EndedBy(10))
	assert.False(t, b.EndedBy(11))
	assert.True(t, b.EndedBy(12))
	assert.True(t, b.EndedBy(13))
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status      booking.Status
		valid       bool
		terminal    bool
		cancellable bool
	}{
		{booking.StatusPending, true, false, true},
		{booking.StatusPreApproved, true, false, true},
		{booking.StatusConfirmed, true, false, false},
		{booking.StatusCompleted, true, true, false},
		{booking.StatusCancelled, true, true, false},
		{booking.Status("unknown"), false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.cancellable, tt.status.IsCancellable())
		})
	}
}
