package sim

import "time"

// Clock supplies the wall-clock time used for drag velocity and particle
// expiry.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. The simulation runs on a single
// goroutine so it needs no locking.
type ManualClock struct {
	t time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

func (c *ManualClock) Now() time.Time { return c.t }

func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func (c *ManualClock) Set(t time.Time) { c.t = t }
