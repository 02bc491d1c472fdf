package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/claude/liftlog/internal/models"
)

// GetWeeklyPlan returns the owner's seven-day plan. Days without a stored
// row come back empty rather than missing, so callers always see 0..6.
func (db *DB) GetWeeklyPlan(ctx context.Context, ownerID int) ([]models.PlanDay, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT day, workout_type, time_of_day, note
		 FROM weekly_plans WHERE user_id = $1 ORDER BY day`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying weekly plan: %w", err)
	}
	defer rows.Close()

	plan := make([]models.PlanDay, 7)
	for i := range plan {
		plan[i] = models.PlanDay{OwnerID: ownerID, Day: i}
	}
	for rows.Next() {
		var d models.PlanDay
		d.OwnerID = ownerID
		if err := rows.Scan(&d.Day, &d.Type, &d.TimeOfDay, &d.Note); err != nil {
			return nil, fmt.Errorf("scanning plan day: %w", err)
		}
		if d.Day >= 0 && d.Day < 7 {
			plan[d.Day] = d
		}
	}
	return plan, rows.Err()
}

// SaveWeeklyPlan replaces the owner's plan with the given days.
func (db *DB) SaveWeeklyPlan(ctx context.Context, ownerID int, days []models.PlanDay) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning plan save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM weekly_plans WHERE user_id = $1`, ownerID); err != nil {
		return fmt.Errorf("clearing weekly plan: %w", err)
	}

	if len(days) > 0 {
		query := `INSERT INTO weekly_plans (user_id, day, workout_type, time_of_day, note) VALUES `
		args := make([]any, 0, len(days)*5)
		values := make([]string, 0, len(days))
		for i, d := range days {
			base := i * 5
			values = append(values, fmt.Sprintf("($%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5))
			args = append(args, ownerID, d.Day, d.Type, d.TimeOfDay, d.Note)
		}
		query += strings.Join(values, ",")

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting weekly plan: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing plan save: %w", err)
	}
	return nil
}
