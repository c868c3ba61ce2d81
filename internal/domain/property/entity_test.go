//go:build unit

package property_test

import (
	"testing"
	"time"

	"rental-market/internal/domain/property"
	"rental-market/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProperty(t *testing.T, price int64) *property.Property {
	t.Helper()
	p, err := property.NewProperty(1, uuid.New(), price, time.Unix(0, 0))
	require.NoError(t, err)
	return p
}

func TestNewProperty(t *testing.T) {
	t.Run("listing starts all closed", func(t *testing.T) {
		p := newProperty(t, 100)

		assert.False(t, p.IsOpenOn(0))
		assert.False(t, p.AllOpen(10, 11))
	})

	t.Run("zero price is legal", func(t *testing.T) {
		p := newProperty(t, 0)

		assert.Equal(t, int64(0), p.PricePerNight())
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := property.NewProperty(1, uuid.New(), -1, time.Unix(0, 0))

		assert.ErrorIs(t, err, property.ErrNegativePrice)
	})
}

func TestPropertyOwnership(t *testing.T) {
	owner := uuid.New()
	p, err := property.NewProperty(7, owner, 100, time.Unix(0, 0))
	require.NoError(t, err)

	assert.True(t, p.IsOwnedBy(owner))
	assert.False(t, p.IsOwnedBy(uuid.New()))
}

func TestPropertyAvailability(t *testing.T) {
	day := clock.SecondsPerDay

	t.Run("timestamps floor to day indexes", func(t *testing.T) {
		p := newProperty(t, 100)
		require.NoError(t, p.SetAvailability(10*day, 15*day, true))

		assert.True(t, p.AllOpen(10, 15))
		assert.False(t, p.IsOpenOn(15))
	})

	t.Run("mid-day timestamps land on the containing day", func(t *testing.T) {
		p := newProperty(t, 100)
		require.NoError(t, p.SetAvailability(10*day+3600, 15*day+3600, true))

		assert.True(t, p.AllOpen(10, 15))
		assert.False(t, p.IsOpenOn(15))
	})

	t.Run("availability range mirrors the calendar", func(t *testing.T) {
		p := newProperty(t, 100)
		require.NoError(t, p.SetAvailabilityDays(11, 13, true))

		want := []bool{false, true, true, false}
		if diff := cmp.Diff(want, p.AvailabilityRange(10*day, 14*day)); diff != "" {
			t.Errorf("AvailabilityRange mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPropertyTotalCost(t *testing.T) {
	day := clock.SecondsPerDay
	p := newProperty(t, 100)

	tests := []struct {
		name  string
		start int64
		end   int64
		want  int64
	}{
		{"two whole nights", 10 * day, 12 * day, 200},
		{"partial day floors away", 10 * day, 12*day + 3600, 200},
		{"shorter than a day prices at zero", 10 * day, 10*day + 3600, 0},
		{"inverted range prices at zero", 12 * day, 10 * day, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.TotalCost(tt.start, tt.end))
		})
	}
}
