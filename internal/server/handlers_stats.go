package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Mriskiali/motion-fits/internal/analytics"
)

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.Sessions()
	// Newest first, matching how history is browsed.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearSessions(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	sessions := s.store.Sessions()
	goals := s.store.Goals()
	assignments := s.store.Assignments()
	plans := s.store.Plans()
	completed := s.store.CompletedExercises()

	writeJSON(w, http.StatusOK, map[string]any{
		"streaks":          analytics.ComputeStreaks(sessions, now),
		"weeklyGoalStreak": analytics.WeeklyGoalStreak(sessions, goals.WeeklyTarget, now),
		"week":             analytics.WeekTotals(sessions, now),
		"month":            analytics.MonthTotals(sessions, now),
		"superlatives":     analytics.Superlatives(sessions),
		"weeklyAdherence":  analytics.WeeklyAdherence(now, assignments, plans, completed),
		"monthlyAdherence": analytics.MonthlyAdherence(now, assignments, plans, completed),
		"totalSessions":    len(sessions),
	})
}

func (s *Server) handleRecentPBs(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit: " + raw})
			return
		}
		limit = n
	}

	pbs := analytics.RecentPBs(s.store.Sessions(), limit)
	if pbs == nil {
		pbs = []analytics.DatedPB{}
	}
	writeJSON(w, http.StatusOK, pbs)
}

func (s *Server) handleOneRMHistory(w http.ResponseWriter, r *http.Request) {
	history := analytics.OneRMHistory(s.store.Sessions())
	if id := r.URL.Query().Get("exerciseId"); id != "" {
		series, ok := history[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no 1RM history for exercise: " + id})
			return
		}
		writeJSON(w, http.StatusOK, series)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
