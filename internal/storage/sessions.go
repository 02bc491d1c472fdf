package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `id, user_id, workout_type, title, status, started_at, paused_at, ended_at, deleted_at`

// CreateSession inserts a session row and its exercise snapshots. The two
// writes share one transaction: either the session appears with its full
// exercise list or the insert fails as a whole.
func (db *DB) CreateSession(ctx context.Context, s models.WorkoutSession, exercises []models.SessionExercise) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning session insert: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workout_sessions (`+sessionColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		s.ID, s.OwnerID, s.Type, s.Title, s.Status, s.StartedAt, s.PausedAt, s.EndedAt, s.DeletedAt)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	if len(exercises) > 0 {
		query := `INSERT INTO session_exercises
			(session_id, exercise_order, name, target_muscle, machine_number, seat_height, sets, reps, weight, completed) VALUES `
		args := make([]any, 0, len(exercises)*10)
		values := make([]string, 0, len(exercises))
		for i, e := range exercises {
			base := i * 10
			values = append(values, fmt.Sprintf(
				"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10,
			))
			args = append(args, e.SessionID, e.Order, e.Name, e.TargetMuscle, e.MachineNumber,
				e.SeatHeight, e.Sets, e.Reps, e.Weight, e.Completed)
		}
		query += strings.Join(values, ",")

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting session exercises: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing session insert: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID scoped to its owner. Returns (nil, nil)
// when no such session exists.
func (db *DB) GetSession(ctx context.Context, ownerID int, id uuid.UUID) (*models.WorkoutSession, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions WHERE id = $1 AND user_id = $2`,
		id, ownerID)

	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	return s, nil
}

// PauseActiveSessions pauses every non-deleted active session of the owner
// except the given id. uuid.Nil excludes nothing. Idempotent; ordered before
// any activating write so a concurrent reader never sees two active sessions.
func (db *DB) PauseActiveSessions(ctx context.Context, ownerID int, except uuid.UUID, now time.Time) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions
		 SET status = 'paused', paused_at = $3
		 WHERE user_id = $1 AND id <> $2 AND status = 'active' AND deleted_at IS NULL`,
		ownerID, except, now)
	if err != nil {
		return fmt.Errorf("pausing active sessions: %w", err)
	}
	return nil
}

// ActivateSession marks the session active and clears its pause marker.
func (db *DB) ActivateSession(ctx context.Context, ownerID int, id uuid.UUID) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions
		 SET status = 'active', paused_at = NULL
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("activating session: %w", err)
	}
	return nil
}

// PauseSession parks the session, recording the pause instant.
func (db *DB) PauseSession(ctx context.Context, ownerID int, id uuid.UUID, now time.Time) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions
		 SET status = 'paused', paused_at = $3
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, ownerID, now)
	if err != nil {
		return fmt.Errorf("pausing session: %w", err)
	}
	return nil
}

// CompleteSession finishes the session and sets each exercise's completion
// flag from the set of completed order values.
func (db *DB) CompleteSession(ctx context.Context, ownerID int, id uuid.UUID, now time.Time, completedOrders map[int]bool) error {
	orders := make([]int32, 0, len(completedOrders))
	for order, done := range completedOrders {
		if done {
			orders = append(orders, int32(order))
		}
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning session completion: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE workout_sessions
		 SET status = 'completed', ended_at = $3, paused_at = NULL
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, ownerID, now)
	if err != nil {
		return fmt.Errorf("completing session: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE session_exercises
		 SET completed = (exercise_order = ANY($2))
		 WHERE session_id = $1`,
		id, orders)
	if err != nil {
		return fmt.Errorf("marking completed exercises: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing session completion: %w", err)
	}
	return nil
}

// SoftDeleteSession moves the session to the trash. Restorable until purged.
func (db *DB) SoftDeleteSession(ctx context.Context, ownerID int, id uuid.UUID, now time.Time) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions SET deleted_at = $3
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`,
		id, ownerID, now)
	if err != nil {
		return fmt.Errorf("soft-deleting session: %w", err)
	}
	return nil
}

// LatestPausedSession returns the most recently paused non-deleted session,
// or (nil, nil) when there is none.
func (db *DB) LatestPausedSession(ctx context.Context, ownerID int) (*models.WorkoutSession, error) {
	return db.latestSession(ctx, ownerID, `status = 'paused'`, `paused_at DESC NULLS LAST`)
}

// LatestActiveSession returns the most recently started non-deleted active
// session, or (nil, nil) when there is none.
func (db *DB) LatestActiveSession(ctx context.Context, ownerID int) (*models.WorkoutSession, error) {
	return db.latestSession(ctx, ownerID, `status = 'active' AND ended_at IS NULL`, `started_at DESC`)
}

func (db *DB) latestSession(ctx context.Context, ownerID int, cond, order string) (*models.WorkoutSession, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions
		 WHERE user_id = $1 AND `+cond+` AND deleted_at IS NULL
		 ORDER BY `+order+` LIMIT 1`,
		ownerID)

	s, err := scanSession(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying latest session: %w", err)
	}
	return s, nil
}

// QueryHistory retrieves completed, non-deleted sessions, newest first.
func (db *DB) QueryHistory(ctx context.Context, ownerID, limit int) ([]models.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions
		 WHERE user_id = $1 AND status = 'completed' AND ended_at IS NOT NULL AND deleted_at IS NULL
		 ORDER BY started_at DESC LIMIT $2`,
		ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// QueryDeletedSessions lists the trash, most recently deleted first.
func (db *DB) QueryDeletedSessions(ctx context.Context, ownerID int) ([]models.WorkoutSession, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions
		 WHERE user_id = $1 AND deleted_at IS NOT NULL
		 ORDER BY deleted_at DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying deleted sessions: %w", err)
	}
	defer rows.Close()

	return collectSessions(rows)
}

// RestoreSession clears the soft-delete marker. A restored in-flight session
// comes back paused so it cannot collide with a currently active one.
func (db *DB) RestoreSession(ctx context.Context, ownerID int, id uuid.UUID, now time.Time) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE workout_sessions
		 SET deleted_at = NULL,
		     status = CASE WHEN status = 'active' THEN 'paused' ELSE status END,
		     paused_at = CASE WHEN status = 'active' THEN $3 ELSE paused_at END
		 WHERE id = $1 AND user_id = $2 AND deleted_at IS NOT NULL`,
		id, ownerID, now)
	if err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// PurgeSession permanently removes a trashed session and its exercises.
func (db *DB) PurgeSession(ctx context.Context, ownerID int, id uuid.UUID) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning purge: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM session_exercises WHERE session_id = $1`, id); err != nil {
		return fmt.Errorf("purging session exercises: %w", err)
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM workout_sessions WHERE id = $1 AND user_id = $2 AND deleted_at IS NOT NULL`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("purging session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing purge: %w", err)
	}
	return nil
}

func scanSession(row pgx.Row) (*models.WorkoutSession, error) {
	var s models.WorkoutSession
	err := row.Scan(&s.ID, &s.OwnerID, &s.Type, &s.Title, &s.Status,
		&s.StartedAt, &s.PausedAt, &s.EndedAt, &s.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSessions(rows pgx.Rows) ([]models.WorkoutSession, error) {
	var result []models.WorkoutSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}
