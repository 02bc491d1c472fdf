package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/models"
)

// Source is the slice of the data layer the exporter reads from.
type Source interface {
	QueryHistory(ctx context.Context, ownerID, limit int) ([]models.WorkoutSession, error)
	GetSessionExercises(ctx context.Context, ownerID int, sessionID uuid.UUID) ([]models.SessionExercise, error)
}

// Stats summarizes one export run.
type Stats struct {
	SessionsTotal    int
	SessionsExported int
	SessionsSkipped  int
	SessionsErrored  int
}

// Exporter writes completed workout sessions as JSON files, one per session.
type Exporter struct {
	src    Source
	state  *StateDB
	outDir string
	log    *slog.Logger
}

// New creates an Exporter writing to outDir.
func New(src Source, state *StateDB, outDir string, log *slog.Logger) *Exporter {
	return &Exporter{src: src, state: state, outDir: outDir, log: log}
}

// historyLimit bounds one run; sessions beyond it are picked up next run.
const historyLimit = 1000

// Run exports every completed session not yet marked in the state database.
// Failures on individual sessions are counted and logged, not fatal.
func (e *Exporter) Run(ctx context.Context, ownerID int) (*Stats, error) {
	stats := &Stats{}

	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return stats, fmt.Errorf("creating output dir %s: %w", e.outDir, err)
	}

	sessions, err := e.src.QueryHistory(ctx, ownerID, historyLimit)
	if err != nil {
		return stats, fmt.Errorf("querying history: %w", err)
	}
	stats.SessionsTotal = len(sessions)

	for _, sess := range sessions {
		if sess.EndedAt == nil {
			continue
		}
		done, err := e.state.IsExported(sess.ID)
		if err != nil {
			return stats, fmt.Errorf("checking state: %w", err)
		}
		if done {
			stats.SessionsSkipped++
			continue
		}

		if err := e.exportOne(ctx, ownerID, sess); err != nil {
			e.log.Error("export failed", "session", sess.ID, "error", err)
			stats.SessionsErrored++
			continue
		}
		if err := e.state.MarkExported(sess.ID, *sess.EndedAt); err != nil {
			return stats, fmt.Errorf("recording state: %w", err)
		}
		stats.SessionsExported++
	}

	return stats, nil
}

func (e *Exporter) exportOne(ctx context.Context, ownerID int, sess models.WorkoutSession) error {
	exercises, err := e.src.GetSessionExercises(ctx, ownerID, sess.ID)
	if err != nil {
		return fmt.Errorf("loading exercises: %w", err)
	}

	detail := models.SessionDetail{
		WorkoutSession:  sess,
		Exercises:       exercises,
		DurationMinutes: sess.DurationMinutes(),
	}

	name := fmt.Sprintf("%s_%s_%s.json",
		sess.EndedAt.UTC().Format("2006-01-02"), sess.Type, sess.ID)
	path := filepath.Join(e.outDir, name)

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	e.log.Info("exported session", "session", sess.ID, "file", name)
	return nil
}
