package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/session"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	info := userInfoFromContext(r)
	writeJSON(w, http.StatusOK, map[string]any{
		"id":           uid,
		"login":        info.Login,
		"display_name": info.DisplayName,
	})
}

func (s *Server) handleTimerConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default_rest_seconds": s.timers.DefaultRestSeconds,
		"rest_presets":         s.timers.RestPresets,
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		WorkoutType string `json:"workout_type"`
		Title       string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !models.ValidWorkoutType(req.WorkoutType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown workout type"})
		return
	}
	if req.Title == "" {
		req.Title = "Workout " + req.WorkoutType
	}

	templates, err := s.db.QueryTemplates(r.Context(), uid, req.WorkoutType)
	if err != nil {
		s.internalError(w, "loading templates", err)
		return
	}
	snapshots := make([]models.SessionExercise, len(templates))
	for i, t := range templates {
		snapshots[i] = t.Snapshot(uuid.Nil, i)
	}

	id, err := s.sessions.Start(r.Context(), uid, req.WorkoutType, req.Title, snapshots)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleResumableSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	sess, err := s.sessions.FindResumable(r.Context(), uid)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	if sess == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	sess, err := s.db.GetSession(r.Context(), uid, id)
	if err != nil {
		s.internalError(w, "loading session", err)
		return
	}
	if sess == nil || sess.DeletedAt != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	exercises, err := s.db.GetSessionExercises(r.Context(), uid, id)
	if err != nil {
		s.internalError(w, "loading session exercises", err)
		return
	}

	detail := models.SessionDetail{
		WorkoutSession:  *sess,
		Exercises:       exercises,
		DurationMinutes: sess.DurationMinutes(),
	}
	if sess.Status == models.StatusActive {
		tmr := session.NewTimer(session.SystemClock())
		detail.ElapsedSeconds = int(tmr.Elapsed(sess.StartedAt).Seconds())
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handlePauseSession(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.sessions.Pause)
}

func (s *Server) handleResumeSession(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, s.sessions.Resume)
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	var req struct {
		CompletedOrders []int `json:"completed_orders"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	completed := make(map[int]bool, len(req.CompletedOrders))
	for _, o := range req.CompletedOrders {
		completed[o] = true
	}

	if err := s.sessions.Complete(r.Context(), uid, id, completed); err != nil {
		s.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "completed"})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	if err := s.db.SoftDeleteSession(r.Context(), uid, id, session.SystemClock().Now()); err != nil {
		s.internalError(w, "deleting session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateSessionWeight(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	order, err := strconv.Atoi(chi.URLParam(r, "order"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise order"})
		return
	}
	var req struct {
		Weight string `json:"weight"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	err = s.db.UpdateSessionExerciseWeight(r.Context(), uid, id, order, req.Weight)
	if errors.Is(err, pgx.ErrNoRows) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	if err != nil {
		s.internalError(w, "updating weight", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// transition runs a pause/resume style state change identified by the path id.
func (s *Server) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, ownerID int, id uuid.UUID) error) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	if err := fn(r.Context(), uid, id); err != nil {
		s.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionError maps lifecycle errors onto HTTP statuses.
func (s *Server) sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrAuthRequired):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "identity required"})
	case errors.Is(err, session.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
	case errors.Is(err, session.ErrInvalidState), errors.Is(err, session.ErrUnskippable):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		s.internalError(w, "session operation", err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.log.Error(op, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func mustUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := r.Context().Value(userIDKey).(int)
	if !ok || id == 0 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "identity required"})
		return 0, false
	}
	return id, true
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
