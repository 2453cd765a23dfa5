package ledger

import (
	"sync"
	"time"
)

// monotonicClock hands out strictly increasing timestamps so that records made
// in quick succession never share one.
type monotonicClock struct {
	mu   sync.Mutex
	last time.Time
}

func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if !now.After(c.last) {
		now = c.last.Add(time.Nanosecond)
	}

	c.last = now

	return now
}
