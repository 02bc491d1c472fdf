package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/claude/liftlog/internal/models"
)

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	sessions, err := s.db.QueryHistory(r.Context(), uid, limit)
	if err != nil {
		s.internalError(w, "loading history", err)
		return
	}

	// Rolling average of the last ten completed sessions per program.
	averages := make(map[string]int, len(models.WorkoutTypes))
	for _, wt := range models.WorkoutTypes {
		avg, err := s.db.AverageDurationMinutes(r.Context(), uid, wt, 10)
		if err != nil {
			s.internalError(w, "computing average durations", err)
			return
		}
		averages[wt] = avg
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessions":         sessions,
		"average_duration": averages,
	})
}

func (s *Server) handleHistoryDetail(w http.ResponseWriter, r *http.Request) {
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
	if sess == nil || sess.DeletedAt != nil || sess.Status != models.StatusCompleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	exercises, err := s.db.GetSessionExercises(r.Context(), uid, id)
	if err != nil {
		s.internalError(w, "loading session exercises", err)
		return
	}
	writeJSON(w, http.StatusOK, models.SessionDetail{
		WorkoutSession:  *sess,
		Exercises:       exercises,
		DurationMinutes: sess.DurationMinutes(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	stats, err := s.db.GetWorkoutStats(r.Context(), uid, time.Now().UTC())
	if err != nil {
		s.internalError(w, "computing stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handlePersonalBests(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	bests, err := s.db.GetPersonalBests(r.Context(), uid, limit)
	if err != nil {
		s.internalError(w, "loading personal bests", err)
		return
	}
	writeJSON(w, http.StatusOK, bests)
}

func (s *Server) handleListTrash(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	sessions, err := s.db.QueryDeletedSessions(r.Context(), uid)
	if err != nil {
		s.internalError(w, "loading trash", err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleRestoreSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	err := s.db.RestoreSession(r.Context(), uid, id, time.Now().UTC())
	if errors.Is(err, pgx.ErrNoRows) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	if err != nil {
		s.internalError(w, "restoring session", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

func (s *Server) handlePurgeSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	if err := s.db.PurgeSession(r.Context(), uid, id); err != nil {
		s.internalError(w, "purging session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	days, err := s.db.GetWeeklyPlan(r.Context(), uid)
	if err != nil {
		s.internalError(w, "loading plan", err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handleSavePlan(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var days []models.PlanDay
	if err := json.NewDecoder(r.Body).Decode(&days); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	for _, d := range days {
		if d.Day < 0 || d.Day > 6 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day must be 0 through 6"})
			return
		}
		if d.Type != "" && d.Type != "rest" && !models.ValidWorkoutType(d.Type) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown workout type"})
			return
		}
	}

	if err := s.db.SaveWeeklyPlan(r.Context(), uid, days); err != nil {
		s.internalError(w, "saving plan", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
