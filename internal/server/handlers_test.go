package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/session"
)

func testServer() *Server {
	return &Server{
		timers: config.TimersConfig{DefaultRestSeconds: 60, RestPresets: []int{30, 60, 90}},
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func identified(req *http.Request) *http.Request {
	ctx := context.WithValue(req.Context(), userIDKey, 7)
	ctx = context.WithValue(ctx, userInfoKey, UserInfo{Login: "alice@example.com", DisplayName: "Alice"})
	return req.WithContext(ctx)
}

// TestHandleMe verifies the identity endpoint echoes the resolved user.
func TestHandleMe(t *testing.T) {
	s := testServer()
	req := identified(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	rec := httptest.NewRecorder()

	s.handleMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		ID    int    `json:"id"`
		Login string `json:"login"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.ID != 7 {
		t.Errorf("id = %d, want 7", body.ID)
	}
	if body.Login != "alice@example.com" {
		t.Errorf("login = %q, want alice@example.com", body.Login)
	}
}

// TestHandleTimerConfig verifies the rest timer defaults are exposed.
func TestHandleTimerConfig(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()

	s.handleTimerConfig(rec, httptest.NewRequest(http.MethodGet, "/api/v1/config/timers", nil))

	var body struct {
		DefaultRestSeconds int   `json:"default_rest_seconds"`
		RestPresets        []int `json:"rest_presets"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.DefaultRestSeconds != 60 {
		t.Errorf("default_rest_seconds = %d, want 60", body.DefaultRestSeconds)
	}
	if len(body.RestPresets) != 3 {
		t.Errorf("rest_presets length = %d, want 3", len(body.RestPresets))
	}
}

// TestStartSessionRejectsBadInput verifies malformed bodies and unknown
// programs are rejected before any state changes.
func TestStartSessionRejectsBadInput(t *testing.T) {
	s := testServer()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed JSON", "{not json", http.StatusBadRequest},
		{"unknown program", `{"workout_type":"Z"}`, http.StatusBadRequest},
		{"empty program", `{}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := identified(httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			s.handleStartSession(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

// TestStartSessionRequiresIdentity verifies unauthenticated requests get 401.
func TestStartSessionRequiresIdentity(t *testing.T) {
	s := testServer()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"workout_type":"A"}`))
	rec := httptest.NewRecorder()

	s.handleStartSession(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// TestSessionErrorMapping verifies lifecycle errors translate to the right
// HTTP statuses.
func TestSessionErrorMapping(t *testing.T) {
	s := testServer()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"auth required", session.ErrAuthRequired, http.StatusUnauthorized},
		{"not found", session.ErrNotFound, http.StatusNotFound},
		{"invalid state", session.ErrInvalidState, http.StatusConflict},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.sessionError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

// TestParseSessionID verifies ID parsing rejects junk with 400.
func TestParseSessionID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if _, ok := parseSessionID(rec, req); ok {
		t.Error("parseSessionID with no URL param succeeded")
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
