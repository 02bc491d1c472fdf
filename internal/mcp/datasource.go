package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB (local)
// and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	QueryHistory(ctx context.Context, ownerID, limit int) ([]models.WorkoutSession, error)
	GetSessionExercises(ctx context.Context, ownerID int, sessionID uuid.UUID) ([]models.SessionExercise, error)
	GetWorkoutStats(ctx context.Context, ownerID int, now time.Time) (*storage.WorkoutStats, error)
	GetPersonalBests(ctx context.Context, ownerID, limit int) ([]storage.PersonalBest, error)
	AverageDurationMinutes(ctx context.Context, ownerID int, workoutType string, lastN int) (int, error)
	QueryTemplates(ctx context.Context, ownerID int, workoutType string) ([]models.ExerciseTemplate, error)
	GetWeeklyPlan(ctx context.Context, ownerID int) ([]models.PlanDay, error)
	LatestPausedSession(ctx context.Context, ownerID int) (*models.WorkoutSession, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
