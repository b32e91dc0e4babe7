package character

import "time"

// StartTicking updates the character at a fixed 60hz until Close is called.
// It blocks, so hosts without their own frame callback run it on its own
// goroutine; hosts with a frame callback call Update themselves instead.
func (c *Character) StartTicking() {
	last := time.Now()
	for range c.ticker.C {
		if c.closed.Load() {
			return
		}
		now := time.Now()
		c.Update(float32(now.Sub(last).Seconds()))
		last = now
	}
}
