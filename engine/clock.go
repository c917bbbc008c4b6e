package engine

import "time"

// SimulationClock turns monotonic timestamps into frame deltas
// The first tick yields zero; a timestamp at or before the last one yields
// zero and leaves the clock where it was
type SimulationClock struct {
	now     time.Duration
	delta   time.Duration
	started bool
}

// Tick records now and returns the elapsed time since the previous tick
func (c *SimulationClock) Tick(now time.Duration) time.Duration {
	switch {
	case !c.started:
		c.started = true
		c.now = now
		c.delta = 0
	case now <= c.now:
		c.delta = 0
	default:
		c.delta = now - c.now
		c.now = now
	}
	return c.delta
}

// Now returns the latest accepted timestamp
func (c *SimulationClock) Now() time.Duration {
	return c.now
}

// Delta returns the dt produced by the last Tick
func (c *SimulationClock) Delta() time.Duration {
	return c.delta
}

func (c *SimulationClock) Started() bool {
	return c.started
}
