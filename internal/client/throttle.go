package client

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval keeps the public mainnet endpoint from rate limiting us
const DefaultInterval = 500 * time.Millisecond

// Throttle pauses the caller after each RPC call. Every Wait blocks for the
// full interval counted from the moment it is called, however long the call
// before it took. It is meant for a single sequential caller.
type Throttle struct {
	limiter  *rate.Limiter
	interval time.Duration
}

// NewThrottle creates a throttle. A non-positive interval disables pacing.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		return &Throttle{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Throttle{interval: interval}
}

// Interval returns the configured pause, zero when pacing is disabled
func (t *Throttle) Interval() time.Duration {
	return t.interval
}

// Wait blocks for the interval or until ctx is done
func (t *Throttle) Wait(ctx context.Context) error {
	if t.interval <= 0 {
		return t.limiter.Wait(ctx)
	}

	// A drained bucket makes the next token due one interval from now
	now := time.Now()
	t.limiter = rate.NewLimiter(rate.Every(t.interval), 1)
	t.limiter.AllowN(now, 1)
	return t.limiter.Wait(ctx)
}
