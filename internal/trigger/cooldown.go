package trigger

import "time"

// Cooldown is the fire-rate timer. Time that runs past an expiry is kept as
// credit for the next Start so chained shots stay on schedule regardless of
// tick length.
type Cooldown struct {
	remaining time.Duration
	running   bool
}

// Start arms the timer for interval. A non-positive interval leaves it
// stopped.
func (c *Cooldown) Start(interval time.Duration) {
	if interval <= 0 {
		c.Reset()
		return
	}
	credit := time.Duration(0)
	if !c.running && c.remaining < 0 {
		credit = c.remaining
	}
	c.remaining = interval + credit
	c.running = true
}

// Advance runs the clock and reports whether it expired during dt.
func (c *Cooldown) Advance(dt time.Duration) bool {
	if !c.running || dt <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return false
	}
	c.running = false
	return true
}

// Expired reports a running timer whose credit already covers it, which
// happens when one tick spans several intervals.
func (c *Cooldown) Expired() bool {
	if c.running && c.remaining <= 0 {
		c.running = false
		return true
	}
	return false
}

func (c *Cooldown) Running() bool { return c.running }

// Remaining is zero once the timer has expired.
func (c *Cooldown) Remaining() time.Duration {
	if !c.running || c.remaining < 0 {
		return 0
	}
	return c.remaining
}

// Settle drops any carried credit.
func (c *Cooldown) Settle() {
	if !c.running {
		c.remaining = 0
	}
}

func (c *Cooldown) Reset() {
	c.remaining = 0
	c.running = false
}
