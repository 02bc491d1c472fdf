package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// newTestServer creates an httptest server that routes requests to handler
// functions keyed by path. Verifies the HTTP client sends correct paths and
// query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestQueryHistory verifies the client unwraps the history envelope and
// forwards the limit parameter.
func TestQueryHistory(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/history": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "25" {
				t.Errorf("limit=%q, want 25", got)
			}
			writeTestJSON(t, w, historyEnvelope{
				Sessions: []models.WorkoutSession{
					{ID: uuid.New(), Type: "A", Status: models.StatusCompleted},
				},
				AverageDuration: map[string]int{"A": 42},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	sessions, err := client.QueryHistory(context.Background(), 1, 25)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].Type != "A" {
		t.Errorf("type=%q, want A", sessions[0].Type)
	}
}

// TestAverageDurationMinutes verifies the per-program average is read from
// the history envelope.
func TestAverageDurationMinutes(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/history": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, historyEnvelope{
				AverageDuration: map[string]int{"A": 42, "B": 35},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	avg, err := client.AverageDurationMinutes(context.Background(), 1, "B", 10)
	if err != nil {
		t.Fatal(err)
	}
	if avg != 35 {
		t.Errorf("avg=%d, want 35", avg)
	}
}

// TestGetWorkoutStats verifies a single struct response is parsed.
func TestGetWorkoutStats(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/stats": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, storage.WorkoutStats{
				MinutesToday:     30,
				CaloriesToday:    180,
				WorkoutsThisWeek: 2,
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	stats, err := client.GetWorkoutStats(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if stats.WorkoutsThisWeek != 2 {
		t.Errorf("workouts_this_week=%d, want 2", stats.WorkoutsThisWeek)
	}
}

// TestLatestPausedSessionNoContent verifies a 204 maps to (nil, nil).
func TestLatestPausedSessionNoContent(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/sessions/resumable": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	sess, err := client.LatestPausedSession(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if sess != nil {
		t.Errorf("session = %+v, want nil", sess)
	}
}

// TestGetSessionExercises verifies exercises are pulled out of the session
// detail payload.
func TestGetSessionExercises(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/sessions/" + id.String(): func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, models.SessionDetail{
				Exercises: []models.SessionExercise{
					{SessionID: id, Order: 0, Name: "Chest Press", Completed: true},
				},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	exercises, err := client.GetSessionExercises(context.Background(), 1, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(exercises) != 1 {
		t.Fatalf("got %d exercises, want 1", len(exercises))
	}
	if exercises[0].Name != "Chest Press" {
		t.Errorf("name=%q, want Chest Press", exercises[0].Name)
	}
}

// TestErrorStatus verifies non-200 responses surface as errors.
func TestErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/stats": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	if _, err := client.GetWorkoutStats(context.Background(), 1, time.Now()); err == nil {
		t.Error("expected error for 500 response")
	}
}
