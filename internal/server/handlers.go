package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Mriskiali/motion-fits/internal/dateutil"
	"github.com/Mriskiali/motion-fits/internal/session"
	"github.com/Mriskiali/motion-fits/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrPlanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrBuiltinPlan):
		status = http.StatusForbidden
	case errors.Is(err, session.ErrNoActiveSession), errors.Is(err, session.ErrSessionActive):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// dateOrToday validates a date key, defaulting an empty value to today.
func dateOrToday(date string) (string, bool) {
	if date == "" {
		return dateutil.Key(time.Now()), true
	}
	if _, ok := dateutil.ParseKey(date); !ok {
		return "", false
	}
	return date, true
}
