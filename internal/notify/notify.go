// Package notify delivers fire-and-forget side effects for session
// transitions and timer expiry. Delivery failure must never block or fail
// the transition that produced the event, so Notify has no error return.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the transition an event describes.
type Kind string

const (
	SessionStarted   Kind = "session_started"
	SessionPaused    Kind = "session_paused"
	SessionResumed   Kind = "session_resumed"
	SessionCompleted Kind = "session_completed"
	RestExpired      Kind = "rest_expired"
)

// Event carries what a sink needs to render a toast, tone, or push.
type Event struct {
	Kind      Kind
	OwnerID   int
	SessionID uuid.UUID
	Title     string
	At        time.Time
}

// Notifier is a sink for events.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// LogNotifier writes events to the structured log. The default sink when no
// external channel is configured.
type LogNotifier struct {
	Log *slog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, ev Event) {
	n.Log.Info("notify", "kind", ev.Kind, "owner", ev.OwnerID, "session", ev.SessionID, "title", ev.Title)
}

// Discard drops all events.
type Discard struct{}

func (Discard) Notify(context.Context, Event) {}
