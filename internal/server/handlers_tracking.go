package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// trackingKey identifies one exercise on one day. An empty date means
// today.
type trackingKey struct {
	PlanID     string `json:"planId"`
	ExerciseID string `json:"exerciseId"`
	Date       string `json:"date"`
}

func (k *trackingKey) normalize() bool {
	if k.PlanID == "" || k.ExerciseID == "" {
		return false
	}
	date, ok := dateOrToday(k.Date)
	if !ok {
		return false
	}
	k.Date = date
	return true
}

func (s *Server) handleSetCount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		trackingKey
		TargetSets int    `json:"targetSets"`
		Count      *int   `json:"count,omitempty"`
		Action     string `json:"action,omitempty"` // "increment" | "decrement"
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !body.normalize() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planId, exerciseId and a valid date are required"})
		return
	}

	var count int
	switch body.Action {
	case "increment":
		count = s.store.Increment(r.Context(), body.PlanID, body.ExerciseID, body.Date, body.TargetSets)
	case "decrement":
		count = s.store.Decrement(r.Context(), body.PlanID, body.ExerciseID, body.Date, body.TargetSets)
	case "":
		if body.Count == nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "count or action is required"})
			return
		}
		s.store.SetCount(r.Context(), body.PlanID, body.ExerciseID, body.Date, *body.Count, body.TargetSets)
		count = s.store.GetCount(body.PlanID, body.ExerciseID, body.Date)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown action: " + body.Action})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":     count,
		"completed": s.store.IsCompleted(body.PlanID, body.ExerciseID, body.Date),
	})
}

func (s *Server) handleToggleCompletion(w http.ResponseWriter, r *http.Request) {
	var body trackingKey
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !body.normalize() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planId, exerciseId and a valid date are required"})
		return
	}

	completed := s.store.ToggleCompletion(r.Context(), body.PlanID, body.ExerciseID, body.Date)
	writeJSON(w, http.StatusOK, map[string]bool{"completed": completed})
}

func (s *Server) handleStartRest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		trackingKey
		DurationSec int `json:"durationSec"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !body.normalize() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planId, exerciseId and a valid date are required"})
		return
	}
	if body.DurationSec <= 0 {
		body.DurationSec = s.store.RestDefaultSec()
	}

	now := time.Now()
	s.store.StartRestTimer(r.Context(), body.PlanID, body.ExerciseID, body.Date, body.DurationSec, now)
	writeJSON(w, http.StatusOK, map[string]any{
		"remainingSec": s.store.RemainingSeconds(body.PlanID, body.ExerciseID, body.Date, now),
	})
}

func (s *Server) handleCancelRest(w http.ResponseWriter, r *http.Request) {
	key := trackingKey{
		PlanID:     r.URL.Query().Get("planId"),
		ExerciseID: r.URL.Query().Get("exerciseId"),
		Date:       r.URL.Query().Get("date"),
	}
	if !key.normalize() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planId, exerciseId and a valid date are required"})
		return
	}

	s.store.CancelRestTimer(r.Context(), key.PlanID, key.ExerciseID, key.Date)
	writeJSON(w, http.StatusOK, map[string]string{"status": "canceled"})
}

func (s *Server) handleRestRemaining(w http.ResponseWriter, r *http.Request) {
	key := trackingKey{
		PlanID:     r.URL.Query().Get("planId"),
		ExerciseID: r.URL.Query().Get("exerciseId"),
		Date:       r.URL.Query().Get("date"),
	}
	if !key.normalize() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planId, exerciseId and a valid date are required"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"remainingSec": s.store.RemainingSeconds(key.PlanID, key.ExerciseID, key.Date, time.Now()),
	})
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		trackingKey
		Weight     float64 `json:"weight"`
		Reps       int     `json:"reps"`
		TargetSets int     `json:"targetSets"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !body.normalize() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "planId, exerciseId and a valid date are required"})
		return
	}

	index := s.store.LogSet(r.Context(), body.PlanID, body.ExerciseID, body.Date, body.Weight, body.Reps, body.TargetSets)
	writeJSON(w, http.StatusOK, map[string]any{
		"setIndex": index,
		"count":    s.store.GetCount(body.PlanID, body.ExerciseID, body.Date),
	})
}

func (s *Server) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"restDefaultSec":      s.store.RestDefaultSec(),
		"autoRestOnIncrement": s.store.AutoRestOnIncrement(),
	})
}

func (s *Server) handleSetPrefs(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RestDefaultSec      *int  `json:"restDefaultSec"`
		AutoRestOnIncrement *bool `json:"autoRestOnIncrement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	if body.RestDefaultSec != nil {
		s.store.SetRestDefaultSec(r.Context(), *body.RestDefaultSec)
	}
	if body.AutoRestOnIncrement != nil {
		s.store.SetAutoRestOnIncrement(r.Context(), *body.AutoRestOnIncrement)
	}
	s.handleGetPrefs(w, r)
}
