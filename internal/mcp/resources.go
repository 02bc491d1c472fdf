package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) weeklyPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	days, err := h.ds.GetWeeklyPlan(ctx, uid)
	if err != nil {
		return nil, err
	}

	today := int(time.Now().Weekday())
	plan := map[string]any{
		"days":  days,
		"today": today,
	}

	return jsonResource(req, plan)
}

func (h *handlers) resumableSession(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	sess, err := h.ds.LatestPausedSession(ctx, uid)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return jsonResource(req, map[string]any{"resumable": false})
	}

	return jsonResource(req, map[string]any{
		"resumable": true,
		"session":   sess,
	})
}

func (h *handlers) trainingSummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	stats, err := h.ds.GetWorkoutStats(ctx, uid, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return jsonResource(req, stats)
}

func jsonResource(req mcp.ReadResourceRequest, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
