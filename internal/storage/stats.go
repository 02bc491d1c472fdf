package storage

import (
	"context"
	"fmt"
	"time"
)

// caloriesPerMinute is the coarse burn rate by program; program C is the
// legs day and burns hotter.
func caloriesPerMinute(workoutType string) int {
	if workoutType == "C" {
		return 8
	}
	return 6
}

// PersonalBest is the heaviest recorded weight for one exercise.
type PersonalBest struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
}

// WorkoutStats is the dashboard summary: today's training time and calories,
// this week's completed session count, and top lifts.
type WorkoutStats struct {
	MinutesToday     int            `json:"minutes_today"`
	CaloriesToday    int            `json:"calories_today"`
	WorkoutsThisWeek int            `json:"workouts_this_week"`
	PersonalBests    []PersonalBest `json:"personal_bests"`
}

// GetWorkoutStats computes the dashboard summary as of now. Weeks start on
// Sunday, matching the weekly plan.
func (db *DB) GetWorkoutStats(ctx context.Context, ownerID int, now time.Time) (*WorkoutStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))

	stats := &WorkoutStats{}

	rows, err := db.Pool.Query(ctx,
		`SELECT workout_type, EXTRACT(EPOCH FROM ended_at - started_at) / 60
		 FROM workout_sessions
		 WHERE user_id = $1 AND status = 'completed' AND deleted_at IS NULL
		   AND started_at >= $2 AND started_at < $3`,
		ownerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("querying today's sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var workoutType string
		var minutes float64
		if err := rows.Scan(&workoutType, &minutes); err != nil {
			return nil, fmt.Errorf("scanning today's session: %w", err)
		}
		stats.MinutesToday += int(minutes + 0.5)
		stats.CaloriesToday += int(minutes*float64(caloriesPerMinute(workoutType)) + 0.5)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout_sessions
		 WHERE user_id = $1 AND status = 'completed' AND deleted_at IS NULL
		   AND started_at >= $2`,
		ownerID, weekStart).Scan(&stats.WorkoutsThisWeek)
	if err != nil {
		return nil, fmt.Errorf("counting week's sessions: %w", err)
	}

	bests, err := db.GetPersonalBests(ctx, ownerID, 5)
	if err != nil {
		return nil, err
	}
	stats.PersonalBests = bests

	return stats, nil
}

// GetPersonalBests returns the heaviest completed weight per exercise, best
// first. Non-numeric weight snapshots (bodyweight, rep-range notes) are
// ignored.
func (db *DB) GetPersonalBests(ctx context.Context, ownerID, limit int) ([]PersonalBest, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT e.name, MAX(e.weight::numeric)
		 FROM session_exercises e
		 JOIN workout_sessions s ON s.id = e.session_id
		 WHERE s.user_id = $1 AND s.status = 'completed' AND s.deleted_at IS NULL
		   AND e.weight ~ '^[0-9]+(\.[0-9]+)?$'
		 GROUP BY e.name
		 ORDER BY 2 DESC
		 LIMIT $2`,
		ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying personal bests: %w", err)
	}
	defer rows.Close()

	var result []PersonalBest
	for rows.Next() {
		var pb PersonalBest
		if err := rows.Scan(&pb.Exercise, &pb.Weight); err != nil {
			return nil, fmt.Errorf("scanning personal best: %w", err)
		}
		result = append(result, pb)
	}
	return result, rows.Err()
}

// AverageDurationMinutes averages the length of the owner's most recent
// completed sessions of one program. Returns 0 when there are none.
func (db *DB) AverageDurationMinutes(ctx context.Context, ownerID int, workoutType string, lastN int) (int, error) {
	var avg *float64
	err := db.Pool.QueryRow(ctx,
		`SELECT AVG(minutes) FROM (
		   SELECT EXTRACT(EPOCH FROM ended_at - started_at) / 60 AS minutes
		   FROM workout_sessions
		   WHERE user_id = $1 AND workout_type = $2
		     AND status = 'completed' AND deleted_at IS NULL
		   ORDER BY started_at DESC
		   LIMIT $3
		 ) recent`,
		ownerID, workoutType, lastN).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("averaging session durations: %w", err)
	}
	if avg == nil {
		return 0, nil
	}
	return int(*avg + 0.5), nil
}
