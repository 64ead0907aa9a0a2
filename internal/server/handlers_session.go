package server

import (
	"encoding/json"
	"net/http"
	"time"
)

func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlanID string `json:"planId"`
		Date   string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.PlanID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planId is required"})
		return
	}
	date, ok := dateOrToday(body.Date)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date: " + body.Date})
		return
	}

	if err := s.sessions.Open(body.PlanID, date, time.Now()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"planId": body.PlanID,
		"date":   date,
		"active": true,
	})
}

func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Finish(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	planID, date, active := s.sessions.Active()
	writeJSON(w, http.StatusOK, map[string]any{
		"planId": planID,
		"date":   date,
		"active": active,
	})
}
