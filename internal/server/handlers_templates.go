package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/models"
)

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	workoutType := r.URL.Query().Get("type")
	if workoutType != "" && !models.ValidWorkoutType(workoutType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown workout type"})
		return
	}
	templates, err := s.db.QueryTemplates(r.Context(), uid, workoutType)
	if err != nil {
		s.internalError(w, "loading templates", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"exercises":          templates,
		"estimated_minutes":  models.EstimateDurationMinutes(templates),
		"estimated_calories": models.EstimateCalories(templates),
		"difficulty":         models.EstimateDifficulty(templates),
	})
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var t models.ExerciseTemplate
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !models.ValidWorkoutType(t.Type) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown workout type"})
		return
	}
	if t.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	t.ID = uuid.New()
	t.OwnerID = uid

	if err := s.db.InsertTemplate(r.Context(), t); err != nil {
		s.internalError(w, "creating template", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": t.ID})
}

func (s *Server) handleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	var t models.ExerciseTemplate
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	t.ID = id
	t.OwnerID = uid

	existing, err := s.db.GetTemplate(r.Context(), uid, id)
	if err != nil {
		s.internalError(w, "loading template", err)
		return
	}
	if existing == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	if err := s.db.UpdateTemplate(r.Context(), t); err != nil {
		s.internalError(w, "updating template", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	if err := s.db.DeleteTemplate(r.Context(), uid, id); err != nil {
		s.internalError(w, "deleting template", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveTemplate(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exercise ID"})
		return
	}
	var req struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Direction != "up" && req.Direction != "down" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "direction must be up or down"})
		return
	}

	if err := s.db.ReorderTemplate(r.Context(), uid, id, req.Direction); err != nil {
		s.internalError(w, "moving template", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "moved"})
}

func (s *Server) handleCopyTemplates(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !models.ValidWorkoutType(req.From) || !models.ValidWorkoutType(req.To) || req.From == req.To {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid copy range"})
		return
	}

	copied, err := s.db.CopyTemplates(r.Context(), uid, req.From, req.To)
	if err != nil {
		s.internalError(w, "copying templates", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"copied": copied})
}
