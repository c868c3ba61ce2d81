package clock

import "time"

// SecondsPerDay is the day granularity every market range is measured in.
// Availability, pricing and settlement all floor timestamps to whole days.
const SecondsPerDay int64 = 86400

// DayIndex converts a Unix timestamp (seconds) to an absolute day index.
func DayIndex(unixSec int64) int64 {
	return unixSec / SecondsPerDay
}

// Nights returns the number of whole nights covered by [start, end).
// Partial days floor away: a range shorter than a day counts zero nights.
func Nights(start, end int64) int64 {
	if end <= start {
		return 0
	}
	return (end - start) / SecondsPerDay
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current absolute day index for a clock.
func Today(c Clock) int64 {
	return DayIndex(c.Now().Unix())
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
