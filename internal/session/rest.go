package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/notify"
)

// RestTimer is a Countdown bound to a session and a notification sink. The
// driving loop calls Tick at whatever cadence it likes; the expiry event is
// emitted on the single tick that observes the zero crossing.
type RestTimer struct {
	cd        *Countdown
	notifier  notify.Notifier
	clock     Clock
	ownerID   int
	sessionID uuid.UUID
}

// NewRestTimer starts a rest count-down for the given session.
func NewRestTimer(clock Clock, notifier notify.Notifier, ownerID int, sessionID uuid.UUID, duration time.Duration) *RestTimer {
	return &RestTimer{
		cd:        NewCountdown(clock, duration),
		notifier:  notifier,
		clock:     clock,
		ownerID:   ownerID,
		sessionID: sessionID,
	}
}

// Tick returns the remaining rest time and notifies once when it runs out.
func (r *RestTimer) Tick(ctx context.Context) time.Duration {
	remaining, expired := r.cd.Tick()
	if expired {
		r.notifier.Notify(ctx, notify.Event{
			Kind:      notify.RestExpired,
			OwnerID:   r.ownerID,
			SessionID: r.sessionID,
			At:        r.clock.Now(),
		})
	}
	return remaining
}

// Pause freezes the remaining rest time. Idempotent.
func (r *RestTimer) Pause() { r.cd.Pause() }

// Resume continues from the frozen remainder. Idempotent.
func (r *RestTimer) Resume() { r.cd.Resume() }

// Reset re-arms the timer for a new rest period.
func (r *RestTimer) Reset(duration time.Duration) { r.cd.Reset(duration) }
