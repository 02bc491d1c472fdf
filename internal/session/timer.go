package session

import "time"

// Timer computes elapsed and remaining durations from a stored reference
// instant. Nothing here accumulates per tick: a display loop re-reads the
// clock and recomputes, so the values stay correct after the process was
// suspended for any length of time (screen lock, backgrounded tab).
type Timer struct {
	clock Clock
}

// NewTimer returns a Timer reading from the given clock.
func NewTimer(clock Clock) Timer {
	return Timer{clock: clock}
}

// StartCountUp returns the reference instant for a new count-up timer.
func (t Timer) StartCountUp() time.Time {
	return t.clock.Now()
}

// Elapsed returns the time passed since ref, never negative.
func (t Timer) Elapsed(ref time.Time) time.Duration {
	d := t.clock.Now().Sub(ref)
	if d < 0 {
		return 0
	}
	return d
}

// ResumeCountUp returns a reference instant that makes Elapsed continue from
// the given already-elapsed amount, regardless of how long the pause lasted.
func (t Timer) ResumeCountUp(elapsed time.Duration) time.Time {
	return t.clock.Now().Add(-elapsed)
}

// StartCountDown returns the reference instant for a new count-down timer.
func (t Timer) StartCountDown() time.Time {
	return t.clock.Now()
}

// Remaining returns what is left of a count-down of the given planned
// duration, clamped at zero.
func (t Timer) Remaining(ref time.Time, duration time.Duration) time.Duration {
	rem := duration - t.clock.Now().Sub(ref)
	if rem < 0 {
		return 0
	}
	return rem
}

// ResumeCountDown returns a reference instant that makes Remaining continue
// from the value captured at pause time. The pause length itself does not
// consume any of the count-down.
func (t Timer) ResumeCountDown(duration, remainingAtPause time.Duration) time.Time {
	return t.clock.Now().Add(-(duration - remainingAtPause))
}

// Countdown is a pausable count-down (rest timer) whose zero crossing is the
// single authoritative "expired" edge: Tick reports it once, no matter how
// many ticks observe a zero remainder afterwards.
type Countdown struct {
	timer    Timer
	duration time.Duration
	ref      time.Time
	paused   bool
	frozen   time.Duration // remaining captured at pause
	fired    bool
}

// NewCountdown starts a count-down of the given duration.
func NewCountdown(clock Clock, duration time.Duration) *Countdown {
	t := NewTimer(clock)
	return &Countdown{
		timer:    t,
		duration: duration,
		ref:      t.StartCountDown(),
	}
}

// Remaining returns the time left, clamped at zero. While paused it returns
// the value frozen at pause time.
func (c *Countdown) Remaining() time.Duration {
	if c.paused {
		return c.frozen
	}
	return c.timer.Remaining(c.ref, c.duration)
}

// Pause freezes the remaining time. Idempotent.
func (c *Countdown) Pause() {
	if c.paused {
		return
	}
	c.frozen = c.timer.Remaining(c.ref, c.duration)
	c.paused = true
}

// Resume continues from the remaining time captured at pause. Idempotent.
func (c *Countdown) Resume() {
	if !c.paused {
		return
	}
	c.ref = c.timer.ResumeCountDown(c.duration, c.frozen)
	c.paused = false
}

// Tick re-reads the clock and returns the remaining time plus whether the
// count-down expired on this observation. The expired edge fires exactly
// once per cycle.
func (c *Countdown) Tick() (remaining time.Duration, expired bool) {
	remaining = c.Remaining()
	if remaining == 0 && !c.fired && !c.paused {
		c.fired = true
		expired = true
	}
	return remaining, expired
}

// Reset starts a fresh cycle with the given duration, re-arming the expired
// edge.
func (c *Countdown) Reset(duration time.Duration) {
	c.duration = duration
	c.ref = c.timer.StartCountDown()
	c.paused = false
	c.frozen = 0
	c.fired = false
}
