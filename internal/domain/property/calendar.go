package property

import "errors"

var ErrInvalidDayRange = errors.New("start day must be before end day")

const wordBits = 64

// Calendar is a per-property set of open day indexes, packed into 64-bit
// words keyed by day/64. Days never touched are closed. A day is either
// open or closed; there is no third state.
type Calendar struct {
	words map[int64]uint64
}

func NewCalendar() *Calendar {
	return &Calendar{words: make(map[int64]uint64)}
}

// SetRange marks every day in [startDay, endDay) open or closed.
// Re-setting a day to its current value is a no-op that still succeeds.
func (c *Calendar) SetRange(startDay, endDay int64, open bool) error {
	if startDay >= endDay {
		return ErrInvalidDayRange
	}
	for day := startDay; day < endDay; day++ {
		c.set(day, open)
	}
	return nil
}

// IsOpen reports whether a single day is open. Unset days are closed.
func (c *Calendar) IsOpen(day int64) bool {
	word, ok := c.words[day/wordBits]
	if !ok {
		return false
	}
	return word&(1<<uint(day%wordBits)) != 0
}

// AllOpen reports whether every day in [startDay, endDay) is open.
// An empty range is vacuously open.
func (c *Calendar) AllOpen(startDay, endDay int64) bool {
	for day := startDay; day < endDay; day++ {
		if !c.IsOpen(day) {
			return false
		}
	}
	return true
}

// QueryRange returns one boolean per day for n days starting at startDay.
func (c *Calendar) QueryRange(startDay, n int64) []bool {
	if n <= 0 {
		return []bool{}
	}
	out := make([]bool, n)
	for i := int64(0); i < n; i++ {
		out[i] = c.IsOpen(startDay + i)
	}
	return out
}

func (c *Calendar) set(day int64, open bool) {
	idx := day / wordBits
	mask := uint64(1) << uint(day%wordBits)
	if open {
		c.words[idx] |= mask
		return
	}
	word := c.words[idx] &^ mask
	if word == 0 {
		// keep the map sparse
		delete(c.words, idx)
		return
	}
	c.words[idx] = word
}
