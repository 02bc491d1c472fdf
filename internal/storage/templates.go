package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/claude/liftlog/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const templateColumns = `id, user_id, workout_type, position, name, target_muscle, machine_number, seat_height, sets, reps, weight, created_at`

// QueryTemplates lists an owner's exercise templates, optionally filtered to
// one program, in catalog order.
func (db *DB) QueryTemplates(ctx context.Context, ownerID int, workoutType string) ([]models.ExerciseTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM exercise_templates WHERE user_id = $1`
	args := []any{ownerID}
	if workoutType != "" {
		query += ` AND workout_type = $2`
		args = append(args, workoutType)
	}
	query += ` ORDER BY workout_type, position`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	return result, rows.Err()
}

// GetTemplate retrieves one template scoped to its owner. Returns (nil, nil)
// when absent.
func (db *DB) GetTemplate(ctx context.Context, ownerID int, id uuid.UUID) (*models.ExerciseTemplate, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM exercise_templates WHERE id = $1 AND user_id = $2`,
		id, ownerID)
	t, err := scanTemplate(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying template: %w", err)
	}
	return t, nil
}

// InsertTemplate appends a template to the end of its program's catalog.
func (db *DB) InsertTemplate(ctx context.Context, t models.ExerciseTemplate) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO exercise_templates
		 (id, user_id, workout_type, position, name, target_muscle, machine_number, seat_height, sets, reps, weight)
		 SELECT $1, $2, $3, COALESCE(MAX(position) + 1, 0), $4, $5, $6, $7, $8, $9, $10
		 FROM exercise_templates WHERE user_id = $2 AND workout_type = $3`,
		t.ID, t.OwnerID, t.Type, t.Name, t.TargetMuscle, t.MachineNumber, t.SeatHeight, t.Sets, t.Reps, t.Weight)
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}
	return nil
}

// UpdateTemplate rewrites a template's editable fields. Position and program
// change through ReorderTemplate, not here.
func (db *DB) UpdateTemplate(ctx context.Context, t models.ExerciseTemplate) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE exercise_templates
		 SET name = $3, target_muscle = $4, machine_number = $5, seat_height = $6,
		     sets = $7, reps = $8, weight = $9
		 WHERE id = $1 AND user_id = $2`,
		t.ID, t.OwnerID, t.Name, t.TargetMuscle, t.MachineNumber, t.SeatHeight, t.Sets, t.Reps, t.Weight)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteTemplate removes a template from the catalog.
func (db *DB) DeleteTemplate(ctx context.Context, ownerID int, id uuid.UUID) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM exercise_templates WHERE id = $1 AND user_id = $2`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ReorderTemplate swaps a template with its neighbor above or below within
// the same program. Out-of-range moves are no-ops.
func (db *DB) ReorderTemplate(ctx context.Context, ownerID int, id uuid.UUID, direction string) error {
	t, err := db.GetTemplate(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if t == nil {
		return pgx.ErrNoRows
	}

	neighborPos := t.Position - 1
	if direction == "down" {
		neighborPos = t.Position + 1
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning reorder: %w", err)
	}
	defer tx.Rollback(ctx)

	var neighborID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT id FROM exercise_templates
		 WHERE user_id = $1 AND workout_type = $2 AND position = $3`,
		ownerID, t.Type, neighborPos).Scan(&neighborID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil // already at the edge
	}
	if err != nil {
		return fmt.Errorf("finding reorder neighbor: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE exercise_templates SET position = $2 WHERE id = $1`, neighborID, t.Position); err != nil {
		return fmt.Errorf("moving neighbor: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE exercise_templates SET position = $2 WHERE id = $1`, id, neighborPos); err != nil {
		return fmt.Errorf("moving template: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing reorder: %w", err)
	}
	return nil
}

// CopyTemplates appends copies of one program's templates to another program
// of the same owner. Returns the number copied.
func (db *DB) CopyTemplates(ctx context.Context, ownerID int, fromType, toType string) (int, error) {
	tag, err := db.Pool.Exec(ctx,
		`INSERT INTO exercise_templates
		 (id, user_id, workout_type, position, name, target_muscle, machine_number, seat_height, sets, reps, weight)
		 SELECT gen_random_uuid(), user_id, $3,
		        (SELECT COALESCE(MAX(position) + 1, 0) FROM exercise_templates WHERE user_id = $1 AND workout_type = $3)
		          + row_number() OVER (ORDER BY position) - 1,
		        name, target_muscle, machine_number, seat_height, sets, reps, weight
		 FROM exercise_templates
		 WHERE user_id = $1 AND workout_type = $2`,
		ownerID, fromType, toType)
	if err != nil {
		return 0, fmt.Errorf("copying templates: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// SeedDefaultTemplates installs the starter catalog for an owner with no
// templates yet. Idempotent.
func (db *DB) SeedDefaultTemplates(ctx context.Context, ownerID int) error {
	var count int
	if err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercise_templates WHERE user_id = $1`, ownerID).Scan(&count); err != nil {
		return fmt.Errorf("counting templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `INSERT INTO exercise_templates
		(id, user_id, workout_type, position, name, target_muscle, machine_number, seat_height, sets, reps, weight) VALUES `
	args := make([]any, 0, len(models.DefaultTemplates)*11)
	values := make([]string, 0, len(models.DefaultTemplates))
	positions := map[string]int{}
	for i, t := range models.DefaultTemplates {
		pos := positions[t.Type]
		positions[t.Type]++
		base := i * 11
		values = append(values, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11,
		))
		args = append(args, uuid.New(), ownerID, t.Type, pos, t.Name, t.TargetMuscle,
			t.MachineNumber, t.SeatHeight, t.Sets, t.Reps, t.Weight)
	}
	query += strings.Join(values, ",")

	if _, err := db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("seeding default templates: %w", err)
	}
	return nil
}

func scanTemplate(row pgx.Row) (*models.ExerciseTemplate, error) {
	var t models.ExerciseTemplate
	err := row.Scan(&t.ID, &t.OwnerID, &t.Type, &t.Position, &t.Name, &t.TargetMuscle,
		&t.MachineNumber, &t.SeatHeight, &t.Sets, &t.Reps, &t.Weight, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
