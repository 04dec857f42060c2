package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// Tick is one fixed-interval advancement signal.
// Delta is informational only: seconds since the previous tick, zero for the first
type Tick struct {
	Seq   uint64
	Time  time.Time
	Delta float64
}

// Clock emits ticks on a fixed nominal interval without backpressure.
// A tick that finds the consumer busy is dropped, never queued
type Clock struct {
	interval time.Duration
	provider TimeProvider

	seq  uint64
	last time.Time

	dropped atomic.Uint64
}

// NewClock creates a clock with the given interval and time source
func NewClock(interval time.Duration, provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		interval: interval,
		provider: provider,
	}
}

// Dropped returns how many ticks were discarded because the consumer was busy
func (c *Clock) Dropped() uint64 {
	return c.dropped.Load()
}

// stamp produces and records the next tick for the moment now. Not safe for concurrent use
func (c *Clock) stamp(now time.Time) Tick {
	tick := c.peek(now)
	c.commit(tick)
	return tick
}

// peek builds the tick that would follow the last delivered one
func (c *Clock) peek(now time.Time) Tick {
	tick := Tick{Seq: c.seq + 1, Time: now}
	if c.seq > 0 {
		tick.Delta = now.Sub(c.last).Seconds()
	}
	return tick
}

func (c *Clock) commit(tick Tick) {
	c.seq = tick.Seq
	c.last = tick.Time
}

// fire offers one tick on out and returns the next deadline and how long to wait for it.
// A dropped tick leaves seq and last untouched, so the next Delta spans the gap
func (c *Clock) fire(out chan<- Tick, deadline time.Time) (time.Time, time.Duration) {
	now := c.provider.Now()
	tick := c.peek(now)
	select {
	case out <- tick:
		c.commit(tick)
	default:
		c.dropped.Add(1)
	}

	deadline = c.nextDeadline(deadline, now)
	wait := deadline.Sub(c.provider.Now())
	if wait < 0 {
		wait = 0
	}
	return deadline, wait
}

// nextDeadline advances the deadline by one interval, re-anchoring to now when too far behind
func (c *Clock) nextDeadline(prev, now time.Time) time.Time {
	next := prev.Add(c.interval)
	if now.Sub(next) > c.interval*constants.MaxTickLag {
		next = now.Add(c.interval)
	}
	return next
}

// Start runs the clock until ctx is done. The returned channel is closed on exit
func (c *Clock) Start(ctx context.Context) <-chan Tick {
	out := make(chan Tick, 1)

	core.Go(func() {
		defer close(out)

		deadline := c.provider.Now().Add(c.interval)
		timer := time.NewTimer(c.interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			var wait time.Duration
			deadline, wait = c.fire(out, deadline)
			timer.Reset(wait)
		}
	})

	return out
}
