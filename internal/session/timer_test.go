package session

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for timer and lifecycle tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// TestElapsedMonotonic verifies that elapsed time is derived from the
// reference instant and keeps increasing as the clock advances, including
// across a simulated one-hour suspension with no intervening ticks.
func TestElapsedMonotonic(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	ref := timer.StartCountUp()
	if got := timer.Elapsed(ref); got != 0 {
		t.Errorf("Elapsed at start = %v, want 0", got)
	}

	prev := time.Duration(0)
	for _, step := range []time.Duration{time.Second, 30 * time.Second, 3600 * time.Second} {
		clock.Advance(step)
		got := timer.Elapsed(ref)
		if got < prev {
			t.Errorf("Elapsed decreased: %v after %v", got, prev)
		}
		prev = got
	}
	if prev != 3631*time.Second {
		t.Errorf("Elapsed after all advances = %v, want 3631s", prev)
	}
}

// TestElapsedNeverNegative verifies the clamp when the reference instant is
// in the future of the current clock reading.
func TestElapsedNeverNegative(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	ref := clock.Now().Add(10 * time.Second)
	if got := timer.Elapsed(ref); got != 0 {
		t.Errorf("Elapsed(future ref) = %v, want 0", got)
	}
}

// TestRemainingClamp verifies that remaining time never goes negative, even
// long after the planned duration has passed.
func TestRemainingClamp(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	ref := timer.StartCountDown()
	clock.Advance(2 * time.Hour)
	if got := timer.Remaining(ref, time.Minute); got != 0 {
		t.Errorf("Remaining far past expiry = %v, want 0", got)
	}
}

// TestResumeCountUpPreservesElapsed verifies that resuming a count-up timer
// continues from the elapsed value captured at pause, no matter how long the
// pause lasted.
func TestResumeCountUpPreservesElapsed(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimer(clock)

	ref := timer.StartCountUp()
	clock.Advance(90 * time.Second)
	atPause := timer.Elapsed(ref)

	clock.Advance(45 * time.Minute) // paused, off screen

	ref = timer.ResumeCountUp(atPause)
	if got := timer.Elapsed(ref); got != 90*time.Second {
		t.Errorf("Elapsed after resume = %v, want 90s", got)
	}
}

// TestCountdownPauseResume verifies that a paused count-down does not consume
// remaining time, and resumes exactly where it left off.
func TestCountdownPauseResume(t *testing.T) {
	clock := newFakeClock()
	cd := NewCountdown(clock, 60*time.Second)

	clock.Advance(20 * time.Second)
	cd.Pause()
	if got := cd.Remaining(); got != 40*time.Second {
		t.Errorf("Remaining at pause = %v, want 40s", got)
	}

	clock.Advance(10 * time.Minute)
	if got := cd.Remaining(); got != 40*time.Second {
		t.Errorf("Remaining while paused = %v, want 40s", got)
	}

	cd.Resume()
	clock.Advance(15 * time.Second)
	if got := cd.Remaining(); got != 25*time.Second {
		t.Errorf("Remaining after resume = %v, want 25s", got)
	}
}

// TestCountdownExpiresOnce verifies the zero crossing is reported exactly
// once per cycle, however many ticks observe it, and is re-armed by Reset.
func TestCountdownExpiresOnce(t *testing.T) {
	clock := newFakeClock()
	cd := NewCountdown(clock, 30*time.Second)

	if _, expired := cd.Tick(); expired {
		t.Error("Tick expired before any time passed")
	}

	clock.Advance(45 * time.Second)
	fired := 0
	for i := 0; i < 5; i++ {
		rem, expired := cd.Tick()
		if rem != 0 {
			t.Errorf("Remaining past expiry = %v, want 0", rem)
		}
		if expired {
			fired++
		}
		clock.Advance(time.Second)
	}
	if fired != 1 {
		t.Errorf("expired fired %d times, want 1", fired)
	}

	cd.Reset(30 * time.Second)
	clock.Advance(31 * time.Second)
	if _, expired := cd.Tick(); !expired {
		t.Error("expired did not fire after Reset")
	}
}

// TestCountdownPauseIdempotent verifies double Pause and double Resume keep
// the frozen remainder intact.
func TestCountdownPauseIdempotent(t *testing.T) {
	clock := newFakeClock()
	cd := NewCountdown(clock, 60*time.Second)

	clock.Advance(10 * time.Second)
	cd.Pause()
	clock.Advance(5 * time.Second)
	cd.Pause()
	if got := cd.Remaining(); got != 50*time.Second {
		t.Errorf("Remaining after double pause = %v, want 50s", got)
	}

	cd.Resume()
	cd.Resume()
	clock.Advance(10 * time.Second)
	if got := cd.Remaining(); got != 40*time.Second {
		t.Errorf("Remaining after double resume = %v, want 40s", got)
	}
}
