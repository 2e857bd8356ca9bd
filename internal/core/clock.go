package core

import "time"

// Clock is a monotonic millisecond clock used to derive frame delta-time.
type Clock interface {
	Now() float64
}

// WallClock reports real time elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock starting at zero now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns milliseconds since the clock was created.
func (c *WallClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// SteppedClock advances by a fixed step every time it is read.
// One read per simulation frame makes a session fully deterministic.
type SteppedClock struct {
	now  float64
	step float64
}

// NewSteppedClock creates a clock that advances stepMs per read.
func NewSteppedClock(stepMs float64) *SteppedClock {
	return &SteppedClock{step: stepMs}
}

// NewTickClock creates a stepped clock for the given tick rate.
func NewTickClock(tickRate int) *SteppedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return NewSteppedClock(1000 / float64(tickRate))
}

// Now advances the clock by one step and returns the new time.
func (c *SteppedClock) Now() float64 {
	c.now += c.step
	return c.now
}

// Advance moves the clock forward without a frame, e.g. to simulate a stall.
func (c *SteppedClock) Advance(ms float64) {
	c.now += ms
}
