package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
	"github.com/Mriskiali/motion-fits/internal/reminder"
)

func (s *Server) handleGetGoals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Goals())
}

func (s *Server) handleApplyGoals(w http.ResponseWriter, r *http.Request) {
	var body models.GoalsSettings
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	saved, err := s.goals.Apply(r.Context(), body, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (s *Server) handleNextReminder(w http.ResponseWriter, r *http.Request) {
	gs := s.store.Goals()
	next, ok := reminder.NextOccurrence(gs, time.Now())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"scheduled": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"scheduled": true,
		"at":        next.Format(time.RFC3339),
		"atMillis":  next.UnixMilli(),
	})
}
