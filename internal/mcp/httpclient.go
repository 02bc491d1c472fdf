package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// HTTPClient implements DataSource by calling the LiftLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// historyEnvelope mirrors the /api/v1/history response shape.
type historyEnvelope struct {
	Sessions        []models.WorkoutSession `json:"sessions"`
	AverageDuration map[string]int          `json:"average_duration"`
}

func (c *HTTPClient) queryHistoryEnvelope(ctx context.Context, limit int) (*historyEnvelope, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/api/v1/history", params)
	if err != nil {
		return nil, err
	}

	var env historyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("httpclient: decode history: %w", err)
	}
	return &env, nil
}

func (c *HTTPClient) QueryHistory(ctx context.Context, _ int, limit int) ([]models.WorkoutSession, error) {
	env, err := c.queryHistoryEnvelope(ctx, limit)
	if err != nil {
		return nil, err
	}
	return env.Sessions, nil
}

func (c *HTTPClient) AverageDurationMinutes(ctx context.Context, _ int, workoutType string, _ int) (int, error) {
	env, err := c.queryHistoryEnvelope(ctx, 1)
	if err != nil {
		return 0, err
	}
	return env.AverageDuration[workoutType], nil
}

func (c *HTTPClient) GetSessionExercises(ctx context.Context, _ int, sessionID uuid.UUID) ([]models.SessionExercise, error) {
	body, err := c.get(ctx, "/api/v1/sessions/"+sessionID.String(), nil)
	if err != nil {
		return nil, err
	}

	var detail models.SessionDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("httpclient: decode session detail: %w", err)
	}
	return detail.Exercises, nil
}

func (c *HTTPClient) GetWorkoutStats(ctx context.Context, _ int, _ time.Time) (*storage.WorkoutStats, error) {
	body, err := c.get(ctx, "/api/v1/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats storage.WorkoutStats
	if err := json.Unmarshal(body, &stats); err != nil {
		return nil, fmt.Errorf("httpclient: decode stats: %w", err)
	}
	return &stats, nil
}

func (c *HTTPClient) GetPersonalBests(ctx context.Context, _ int, limit int) ([]storage.PersonalBest, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "/api/v1/stats/bests", params)
	if err != nil {
		return nil, err
	}

	var bests []storage.PersonalBest
	if err := json.Unmarshal(body, &bests); err != nil {
		return nil, fmt.Errorf("httpclient: decode personal bests: %w", err)
	}
	return bests, nil
}

func (c *HTTPClient) QueryTemplates(ctx context.Context, _ int, workoutType string) ([]models.ExerciseTemplate, error) {
	params := url.Values{}
	if workoutType != "" {
		params.Set("type", workoutType)
	}

	body, err := c.get(ctx, "/api/v1/exercises", params)
	if err != nil {
		return nil, err
	}

	var env struct {
		Exercises []models.ExerciseTemplate `json:"exercises"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return env.Exercises, nil
}

func (c *HTTPClient) GetWeeklyPlan(ctx context.Context, _ int) ([]models.PlanDay, error) {
	body, err := c.get(ctx, "/api/v1/plan", nil)
	if err != nil {
		return nil, err
	}

	var days []models.PlanDay
	if err := json.Unmarshal(body, &days); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return days, nil
}

func (c *HTTPClient) LatestPausedSession(ctx context.Context, _ int) (*models.WorkoutSession, error) {
	body, err := c.get(ctx, "/api/v1/sessions/resumable", nil)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var sess models.WorkoutSession
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("httpclient: decode resumable session: %w", err)
	}
	return &sess, nil
}
