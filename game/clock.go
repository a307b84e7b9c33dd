package game

import "time"

// Clock gates simulation ticks by comparing driver-supplied frame
// timestamps against the current movement interval. At most one tick
// fires per frame; backlog beyond one interval is dropped rather than
// replayed, so a long frame stall never causes a burst of moves.
type Clock struct {
	last time.Time
}

// ShouldTick reports whether a tick is due at now for the given
// interval, recording now as the new anchor when it is. The first
// call after a reset only anchors.
func (c *Clock) ShouldTick(now time.Time, interval time.Duration) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) < interval {
		return false
	}
	c.last = now
	return true
}

// Anchor restarts elapsed-time measurement from now, used when the
// simulation resumes after a pause.
func (c *Clock) Anchor(now time.Time) {
	c.last = now
}

// Reset forgets the anchor entirely.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
