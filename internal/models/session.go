package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of a workout session.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusPaused    SessionStatus = "paused"
	StatusCompleted SessionStatus = "completed"
)

// WorkoutSession is one timed pass through a program's exercise list.
// StartedAt is fixed at creation. EndedAt is set exactly once, on completion.
// DeletedAt marks soft deletion; deleted sessions are excluded from all
// active-session queries.
type WorkoutSession struct {
	ID        uuid.UUID     `json:"id"`
	OwnerID   int           `json:"owner_id"`
	Type      string        `json:"workout_type"`
	Title     string        `json:"title"`
	Status    SessionStatus `json:"status"`
	StartedAt time.Time     `json:"started_at"`
	PausedAt  *time.Time    `json:"paused_at,omitempty"`
	EndedAt   *time.Time    `json:"ended_at,omitempty"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty"`
}

// DurationMinutes returns the session length in whole minutes, or 0 when the
// session has not ended.
func (s WorkoutSession) DurationMinutes() int {
	if s.EndedAt == nil {
		return 0
	}
	return int(s.EndedAt.Sub(s.StartedAt).Round(time.Minute) / time.Minute)
}

// SessionExercise is the snapshot of an exercise template taken when a
// session starts. Template edits after that point never alter it. Order is
// the position at creation time and is the identity used for completion
// tracking, independent of any later display reordering.
type SessionExercise struct {
	SessionID     uuid.UUID `json:"session_id"`
	Order         int       `json:"exercise_order"`
	Name          string    `json:"name"`
	TargetMuscle  string    `json:"target_muscle"`
	MachineNumber string    `json:"machine_number,omitempty"`
	SeatHeight    string    `json:"seat_height,omitempty"`
	Sets          string    `json:"sets"`
	Reps          string    `json:"reps"`
	Weight        string    `json:"weight,omitempty"`
	Completed     bool      `json:"completed"`
}

// SessionDetail is a session together with its exercise snapshots. For
// sessions still in flight ElapsedSeconds carries the wall-clock time since
// start, computed from the stored reference instant rather than any counter.
type SessionDetail struct {
	WorkoutSession
	Exercises       []SessionExercise `json:"exercises"`
	DurationMinutes int               `json:"duration_minutes"`
	ElapsedSeconds  int               `json:"elapsed_seconds,omitempty"`
}
