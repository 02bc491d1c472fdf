package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutTypes is the closed set of program identifiers.
var WorkoutTypes = []string{"A", "B", "C"}

// ValidWorkoutType reports whether t names one of the three programs.
func ValidWorkoutType(t string) bool {
	for _, wt := range WorkoutTypes {
		if t == wt {
			return true
		}
	}
	return false
}

// ExerciseTemplate is a per-owner exercise definition within one of the three
// rotating programs. Sessions snapshot templates at start time; the template
// itself stays editable.
type ExerciseTemplate struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       int       `json:"owner_id"`
	Type          string    `json:"workout_type"`
	Position      int       `json:"position"`
	Name          string    `json:"name"`
	TargetMuscle  string    `json:"target_muscle"`
	MachineNumber string    `json:"machine_number,omitempty"`
	SeatHeight    string    `json:"seat_height,omitempty"`
	Sets          string    `json:"sets"`
	Reps          string    `json:"reps"`
	Weight        string    `json:"weight,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Snapshot converts a template to the immutable per-session record at the
// given order position.
func (t ExerciseTemplate) Snapshot(sessionID uuid.UUID, order int) SessionExercise {
	return SessionExercise{
		SessionID:     sessionID,
		Order:         order,
		Name:          t.Name,
		TargetMuscle:  t.TargetMuscle,
		MachineNumber: t.MachineNumber,
		SeatHeight:    t.SeatHeight,
		Sets:          t.Sets,
		Reps:          t.Reps,
		Weight:        t.Weight,
	}
}
