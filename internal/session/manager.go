package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/notify"
	"github.com/google/uuid"
)

// Store is the persistence surface the lifecycle manager drives. Lookup
// methods return (nil, nil) when no matching row exists; the manager maps
// that to ErrNotFound so no store-level errors cross into callers.
type Store interface {
	CreateSession(ctx context.Context, s models.WorkoutSession, exercises []models.SessionExercise) error
	GetSession(ctx context.Context, ownerID int, id uuid.UUID) (*models.WorkoutSession, error)

	// PauseActiveSessions pauses every non-deleted active session of the
	// owner except the given id (uuid.Nil excludes nothing). Idempotent.
	PauseActiveSessions(ctx context.Context, ownerID int, except uuid.UUID, now time.Time) error

	ActivateSession(ctx context.Context, ownerID int, id uuid.UUID) error
	PauseSession(ctx context.Context, ownerID int, id uuid.UUID, now time.Time) error
	CompleteSession(ctx context.Context, ownerID int, id uuid.UUID, now time.Time, completedOrders map[int]bool) error
	SoftDeleteSession(ctx context.Context, ownerID int, id uuid.UUID, now time.Time) error

	LatestPausedSession(ctx context.Context, ownerID int) (*models.WorkoutSession, error)
	LatestActiveSession(ctx context.Context, ownerID int) (*models.WorkoutSession, error)
}

// Manager is the sole authority over workout session transitions. It owns the
// single-active-session invariant: every path that activates a session pauses
// all others first, so no ordering of calls — including from a second tab —
// leaves two sessions active.
type Manager struct {
	store    Store
	clock    Clock
	notifier notify.Notifier
	log      *slog.Logger
}

// NewManager wires a Manager. The notifier is fire-and-forget; its failures
// never affect transitions.
func NewManager(store Store, clock Clock, notifier notify.Notifier, log *slog.Logger) *Manager {
	return &Manager{store: store, clock: clock, notifier: notifier, log: log}
}

// Start pauses any session the owner still has in flight, then creates a new
// active session snapshotting the given exercises in order. The pause write
// is ordered strictly before the insert: if the insert fails, prior sessions
// stay safely paused and nothing is active.
func (m *Manager) Start(ctx context.Context, ownerID int, workoutType, title string, snapshots []models.SessionExercise) (uuid.UUID, error) {
	if ownerID == 0 {
		return uuid.Nil, ErrAuthRequired
	}
	if !models.ValidWorkoutType(workoutType) {
		return uuid.Nil, fmt.Errorf("%w: unknown program %q", ErrInvalidState, workoutType)
	}

	now := m.clock.Now()
	if err := m.store.PauseActiveSessions(ctx, ownerID, uuid.Nil, now); err != nil {
		return uuid.Nil, fmt.Errorf("pausing previous sessions: %w", err)
	}

	s := models.WorkoutSession{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Type:      workoutType,
		Title:     title,
		Status:    models.StatusActive,
		StartedAt: now,
	}
	exercises := make([]models.SessionExercise, len(snapshots))
	for i, snap := range snapshots {
		snap.SessionID = s.ID
		snap.Order = i
		snap.Completed = false
		exercises[i] = snap
	}

	if err := m.store.CreateSession(ctx, s, exercises); err != nil {
		// The session and its exercises are written together; a partial
		// insert must not surface as an active session.
		if delErr := m.store.SoftDeleteSession(ctx, ownerID, s.ID, m.clock.Now()); delErr != nil {
			m.log.Warn("orphaned session cleanup failed", "session", s.ID, "error", delErr)
		}
		return uuid.Nil, fmt.Errorf("creating session: %w", err)
	}

	m.notifier.Notify(ctx, notify.Event{
		Kind: notify.SessionStarted, OwnerID: ownerID, SessionID: s.ID, Title: title, At: now,
	})
	return s.ID, nil
}

// Resume activates a previously paused session. Every other in-flight session
// of the owner is paused first — defensive cleanup against orphans left by
// crashed clients — and only then is the target activated.
func (m *Manager) Resume(ctx context.Context, ownerID int, id uuid.UUID) error {
	s, err := m.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if s.Status == models.StatusCompleted {
		return fmt.Errorf("%w: session already completed", ErrInvalidState)
	}

	now := m.clock.Now()
	if err := m.store.PauseActiveSessions(ctx, ownerID, id, now); err != nil {
		return fmt.Errorf("pausing other sessions: %w", err)
	}
	if err := m.store.ActivateSession(ctx, ownerID, id); err != nil {
		return fmt.Errorf("activating session: %w", err)
	}

	m.notifier.Notify(ctx, notify.Event{
		Kind: notify.SessionResumed, OwnerID: ownerID, SessionID: id, Title: s.Title, At: now,
	})
	return nil
}

// Pause records the pause instant and parks the session. Pausing an already
// paused session is a no-op, so repeated calls observe the same state.
func (m *Manager) Pause(ctx context.Context, ownerID int, id uuid.UUID) error {
	s, err := m.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	switch s.Status {
	case models.StatusCompleted:
		return fmt.Errorf("%w: session already completed", ErrInvalidState)
	case models.StatusPaused:
		return nil
	}

	now := m.clock.Now()
	if err := m.store.PauseSession(ctx, ownerID, id, now); err != nil {
		return fmt.Errorf("pausing session: %w", err)
	}

	m.notifier.Notify(ctx, notify.Event{
		Kind: notify.SessionPaused, OwnerID: ownerID, SessionID: id, Title: s.Title, At: now,
	})
	return nil
}

// Complete finishes the session, stamping the end instant and marking each
// exercise done or not according to completedOrders (keyed by the immutable
// order value, never the display position). Completed is terminal.
func (m *Manager) Complete(ctx context.Context, ownerID int, id uuid.UUID, completedOrders map[int]bool) error {
	s, err := m.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if s.Status == models.StatusCompleted {
		return fmt.Errorf("%w: session already completed", ErrInvalidState)
	}

	now := m.clock.Now()
	if err := m.store.CompleteSession(ctx, ownerID, id, now, completedOrders); err != nil {
		return fmt.Errorf("completing session: %w", err)
	}

	m.notifier.Notify(ctx, notify.Event{
		Kind: notify.SessionCompleted, OwnerID: ownerID, SessionID: id, Title: s.Title, At: now,
	})
	return nil
}

// FindResumable returns the session the owner should be offered to continue:
// the most recently paused one, or — when only an orphaned active session
// exists, left behind by an abrupt shutdown — that session, auto-paused
// first so it is never presented as running.
func (m *Manager) FindResumable(ctx context.Context, ownerID int) (*models.WorkoutSession, error) {
	if ownerID == 0 {
		return nil, ErrAuthRequired
	}

	paused, err := m.store.LatestPausedSession(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying paused sessions: %w", err)
	}
	if paused != nil {
		return paused, nil
	}

	active, err := m.store.LatestActiveSession(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying active sessions: %w", err)
	}
	if active == nil {
		return nil, nil
	}

	now := m.clock.Now()
	if err := m.store.PauseSession(ctx, ownerID, active.ID, now); err != nil {
		return nil, fmt.Errorf("auto-pausing orphaned session: %w", err)
	}
	m.log.Info("auto-paused orphaned active session", "session", active.ID, "owner", ownerID)

	active.Status = models.StatusPaused
	active.PausedAt = &now
	return active, nil
}

// getOwned loads a session and applies the ownership and soft-delete filters.
func (m *Manager) getOwned(ctx context.Context, ownerID int, id uuid.UUID) (*models.WorkoutSession, error) {
	if ownerID == 0 {
		return nil, ErrAuthRequired
	}
	s, err := m.store.GetSession(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if s == nil || s.DeletedAt != nil {
		return nil, ErrNotFound
	}
	return s, nil
}
