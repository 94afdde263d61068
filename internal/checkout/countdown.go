package checkout

import (
	"math"
	"time"
)

// countdown is the pix payment window. The deadline is the source of
// truth for confirm guards; the timer only drives the onExpire
// callback and is stopped when the session leaves pix_pending.
type countdown struct {
	deadline time.Time
	timer    *time.Timer
}

func startCountdown(window time.Duration, now time.Time, onExpire func()) *countdown {
	c := &countdown{deadline: now.Add(window)}
	if onExpire != nil {
		c.timer = time.AfterFunc(window, onExpire)
	}
	return c
}

func (c *countdown) expiredAt(now time.Time) bool {
	return !now.Before(c.deadline)
}

func (c *countdown) remainingSeconds(now time.Time) int {
	left := c.deadline.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// release stops the expiry callback. The callback may already be in
// flight; expiry handlers must tolerate firing on a released window.
func (c *countdown) release() {
	if c.timer != nil {
		c.timer.Stop()
	}
}
