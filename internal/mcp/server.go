package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog workout tracking server. Query workout history, dashboard stats, personal bests, and the exercise catalog. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkoutHistory, Handler: h.getWorkoutHistory},
		server.ServerTool{Tool: toolGetWorkoutDetail, Handler: h.getWorkoutDetail},
		server.ServerTool{Tool: toolGetWorkoutStats, Handler: h.getWorkoutStats},
		server.ServerTool{Tool: toolGetPersonalBests, Handler: h.getPersonalBests},
		server.ServerTool{Tool: toolGetAverageDurations, Handler: h.getAverageDurations},
		server.ServerTool{Tool: toolGetExerciseCatalog, Handler: h.getExerciseCatalog},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resWeeklyPlan, Handler: h.weeklyPlan},
		server.ServerResource{Resource: resResumableSession, Handler: h.resumableSession},
		server.ServerResource{Resource: resTrainingSummary, Handler: h.trainingSummary},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resWeeklyPlan = mcp.NewResource(
	"liftlog://weekly_plan",
	"Weekly Plan",
	mcp.WithResourceDescription("The seven-day training plan with program assignments per weekday"),
	mcp.WithMIMEType("application/json"),
)

var resResumableSession = mcp.NewResource(
	"liftlog://resumable_session",
	"Resumable Session",
	mcp.WithResourceDescription("The paused workout session the user can continue, if any"),
	mcp.WithMIMEType("application/json"),
)

var resTrainingSummary = mcp.NewResource(
	"liftlog://training_summary",
	"Training Summary",
	mcp.WithResourceDescription("Today's training time and calories, this week's workout count, and top lifts"),
	mcp.WithMIMEType("application/json"),
)
