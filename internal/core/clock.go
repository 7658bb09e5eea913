package core

import "time"

// MaxFrameTime caps the delta reported by Clock so a stalled terminal
// cannot teleport entities through each other.
const MaxFrameTime = 0.1

// Clock turns wall-clock tick timestamps into clamped simulation deltas.
type Clock struct {
	tickRate int
	last     time.Time
}

// NewClock creates a clock for the given target tick rate.
func NewClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{tickRate: tickRate}
}

// Interval returns the wall-clock time between ticks.
func (c *Clock) Interval() time.Duration {
	return time.Second / time.Duration(c.tickRate)
}

// Tick records a tick at now and returns the elapsed seconds since the
// previous one, in (0, MaxFrameTime]. The first tick, and any tick whose
// timestamp does not advance, reports the nominal frame time.
func (c *Clock) Tick(now time.Time) float64 {
	nominal := 1.0 / float64(c.tickRate)
	if c.last.IsZero() {
		c.last = now
		return min(nominal, MaxFrameTime)
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt <= 0 {
		return min(nominal, MaxFrameTime)
	}
	return min(dt, MaxFrameTime)
}
