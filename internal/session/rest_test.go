package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/notify"
)

// TestRestTimerNotifiesOnce verifies the expiry event is emitted on exactly
// one tick, however many ticks observe the exhausted timer afterwards.
func TestRestTimerNotifiesOnce(t *testing.T) {
	clock := newFakeClock()
	rec := &recordingNotifier{}
	rt := NewRestTimer(clock, rec, 1, uuid.New(), 60*time.Second)

	for i := 0; i < 5; i++ {
		clock.Advance(20 * time.Second)
		rt.Tick(context.Background())
	}

	if len(rec.kinds) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.kinds))
	}
	if rec.kinds[0] != notify.RestExpired {
		t.Errorf("event = %q, want %q", rec.kinds[0], notify.RestExpired)
	}
}

// TestRestTimerPauseBlocksExpiry verifies a paused timer never notifies, and
// that after resume the pause length did not consume rest time.
func TestRestTimerPauseBlocksExpiry(t *testing.T) {
	clock := newFakeClock()
	rec := &recordingNotifier{}
	rt := NewRestTimer(clock, rec, 1, uuid.New(), 60*time.Second)

	clock.Advance(30 * time.Second)
	rt.Pause()
	clock.Advance(10 * time.Minute)
	if remaining := rt.Tick(context.Background()); remaining != 30*time.Second {
		t.Errorf("remaining while paused = %v, want 30s", remaining)
	}
	if len(rec.kinds) != 0 {
		t.Fatalf("got %d events while paused, want 0", len(rec.kinds))
	}

	rt.Resume()
	clock.Advance(30 * time.Second)
	rt.Tick(context.Background())
	if len(rec.kinds) != 1 {
		t.Errorf("got %d events after resume, want 1", len(rec.kinds))
	}
}

// TestRestTimerReset verifies Reset re-arms the expiry edge for a new cycle.
func TestRestTimerReset(t *testing.T) {
	clock := newFakeClock()
	rec := &recordingNotifier{}
	rt := NewRestTimer(clock, rec, 1, uuid.New(), 30*time.Second)

	clock.Advance(time.Minute)
	rt.Tick(context.Background())

	rt.Reset(30 * time.Second)
	clock.Advance(time.Minute)
	rt.Tick(context.Background())

	if len(rec.kinds) != 2 {
		t.Errorf("got %d events, want 2 (one per cycle)", len(rec.kinds))
	}
}
