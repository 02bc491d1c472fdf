package mcp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/liftlog/internal/models"
)

// --- Tool definitions ---

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("List completed workout sessions, most recent first. Returns session summaries with program type, title, timing, and duration."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions to return. Defaults to 50.")),
	mcp.WithString("type", mcp.Description("Filter by program type (A, B, or C)."), mcp.Enum("A", "B", "C")),
)

var toolGetWorkoutDetail = mcp.NewTool("get_workout_detail",
	mcp.WithDescription("Retrieve the exercises of one workout session, including the weights used, sets, reps, and which exercises were completed."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session UUID")),
)

var toolGetWorkoutStats = mcp.NewTool("get_workout_stats",
	mcp.WithDescription("Dashboard summary: today's training minutes and calories, this week's completed workout count, and personal best lifts."),
)

var toolGetPersonalBests = mcp.NewTool("get_personal_bests",
	mcp.WithDescription("Top lifts by maximum weight across all completed workouts."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of exercises to return. Defaults to 10.")),
)

var toolGetAverageDurations = mcp.NewTool("get_average_durations",
	mcp.WithDescription("Rolling average duration in minutes of the last ten completed sessions, per program type."),
)

var toolGetExerciseCatalog = mcp.NewTool("get_exercise_catalog",
	mcp.WithDescription("The user's exercise templates with machine settings, sets, reps, and weights, plus estimated duration, calories, and difficulty per program."),
	mcp.WithString("type", mcp.Description("Filter by program type (A, B, or C)."), mcp.Enum("A", "B", "C")),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 50)
	typeFilter := req.GetString("type", "")
	uid := UserIDFromContext(ctx)

	sessions, err := h.ds.QueryHistory(ctx, uid, limit)
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if typeFilter != "" {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.Type == typeFilter {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutDetail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid session_id: " + err.Error()), nil
	}
	uid := UserIDFromContext(ctx)

	exercises, err := h.ds.GetSessionExercises(ctx, uid, id)
	if err != nil {
		h.log.Error("mcp get_workout_detail", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	stats, err := h.ds.GetWorkoutStats(ctx, uid, time.Now().UTC())
	if err != nil {
		h.log.Error("mcp get_workout_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalBests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 10)
	uid := UserIDFromContext(ctx)

	bests, err := h.ds.GetPersonalBests(ctx, uid, limit)
	if err != nil {
		h.log.Error("mcp get_personal_bests", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(bests)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getAverageDurations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	averages := make(map[string]int, len(models.WorkoutTypes))
	for _, wt := range models.WorkoutTypes {
		avg, err := h.ds.AverageDurationMinutes(ctx, uid, wt, 10)
		if err != nil {
			h.log.Error("mcp get_average_durations", "type", wt, "error", err)
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		averages[wt] = avg
	}

	result, err := mcp.NewToolResultJSON(averages)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typeFilter := req.GetString("type", "")
	uid := UserIDFromContext(ctx)

	templates, err := h.ds.QueryTemplates(ctx, uid, typeFilter)
	if err != nil {
		h.log.Error("mcp get_exercise_catalog", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	catalog := map[string]any{
		"exercises":          templates,
		"estimated_minutes":  models.EstimateDurationMinutes(templates),
		"estimated_calories": models.EstimateCalories(templates),
		"difficulty":         models.EstimateDifficulty(templates),
	}

	result, err := mcp.NewToolResultJSON(catalog)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
