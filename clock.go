package skink

import "time"

// maxTickMillis clamps the delta fed to a tick so physics doesn't explode
// after a host hitch or a debugger stall.
const maxTickMillis = 100

// tickClock feeds the driver loop with whole-millisecond deltas and keeps
// a sliding one-second window for the cycles-per-second metric.
type tickClock struct {
	last        time.Time
	windowStart time.Time
	cycles      int
}

func newTickClock() *tickClock {
	now := time.Now()
	return &tickClock{last: now, windowStart: now}
}

// advance returns the whole milliseconds elapsed since the previous call.
// Sub-millisecond remainders stay on the clock rather than being lost, so
// a fast loop still accumulates real time.
func (c *tickClock) advance() int64 {
	now := time.Now()
	dtMillis := now.Sub(c.last).Milliseconds()
	if dtMillis <= 0 {
		return 0
	}
	if dtMillis > maxTickMillis {
		dtMillis = maxTickMillis
		c.last = now
	} else {
		c.last = c.last.Add(time.Duration(dtMillis) * time.Millisecond)
	}
	c.cycles++
	return dtMillis
}

// rollWindow reports the cycle count once per elapsed second, then starts
// a new window.
func (c *tickClock) rollWindow() (int, bool) {
	now := time.Now()
	if now.Sub(c.windowStart) < time.Second {
		return 0, false
	}
	cps := c.cycles
	c.cycles = 0
	c.windowStart = now
	return cps, true
}
