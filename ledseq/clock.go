package ledseq

import "time"

// Clock is a monotonically non-decreasing millisecond counter.
type Clock interface {
	Millis() Millis
}

// MonotonicClock counts milliseconds since it was created using the
// runtime's monotonic clock.
type MonotonicClock struct {
	start time.Time
}

var _ Clock = (*MonotonicClock)(nil)

// NewMonotonicClock creates a clock that reads 0 now.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Millis returns the number of milliseconds elapsed since the clock was
// created.
func (c *MonotonicClock) Millis() Millis {
	return Millis(time.Since(c.start) / time.Millisecond)
}

// ClockFunc is a function that implements Clock.
type ClockFunc func() Millis

// Millis calls f().
func (f ClockFunc) Millis() Millis { return f() }
