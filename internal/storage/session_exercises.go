package storage

import (
	"context"
	"fmt"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetSessionExercises retrieves a session's exercise snapshots in creation
// order. Ownership is enforced through the session row.
func (db *DB) GetSessionExercises(ctx context.Context, ownerID int, sessionID uuid.UUID) ([]models.SessionExercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT e.session_id, e.exercise_order, e.name, e.target_muscle, e.machine_number,
		        e.seat_height, e.sets, e.reps, e.weight, e.completed
		 FROM session_exercises e
		 JOIN workout_sessions s ON s.id = e.session_id
		 WHERE e.session_id = $1 AND s.user_id = $2
		 ORDER BY e.exercise_order`,
		sessionID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying session exercises: %w", err)
	}
	defer rows.Close()

	var result []models.SessionExercise
	for rows.Next() {
		var e models.SessionExercise
		if err := rows.Scan(&e.SessionID, &e.Order, &e.Name, &e.TargetMuscle, &e.MachineNumber,
			&e.SeatHeight, &e.Sets, &e.Reps, &e.Weight, &e.Completed); err != nil {
			return nil, fmt.Errorf("scanning session exercise: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// UpdateSessionExerciseWeight records a mid-session weight adjustment on the
// snapshot row identified by its immutable order value.
func (db *DB) UpdateSessionExerciseWeight(ctx context.Context, ownerID int, sessionID uuid.UUID, order int, weight string) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE session_exercises e
		 SET weight = $4
		 FROM workout_sessions s
		 WHERE e.session_id = $1 AND e.exercise_order = $3
		   AND s.id = e.session_id AND s.user_id = $2 AND s.deleted_at IS NULL`,
		sessionID, ownerID, order, weight)
	if err != nil {
		return fmt.Errorf("updating exercise weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
