package store

import (
	"context"
	"sort"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// LogsFor returns the set logs for (plan, exercise, date), ordered by set
// index.
func (s *Store) LogsFor(planID, exerciseID, date string) []models.SetLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logsForLocked(planID, exerciseID, date)
}

func (s *Store) logsForLocked(planID, exerciseID, date string) []models.SetLog {
	var logs []models.SetLog
	for _, l := range s.setLogs {
		if l.PlanID == planID && l.ExerciseID == exerciseID && l.Date == date {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].SetIndex < logs[j].SetIndex })
	return logs
}

// SessionLogs returns all set logs for a plan on a date, across exercises.
func (s *Store) SessionLogs(planID, date string) []models.SetLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []models.SetLog
	for _, l := range s.setLogs {
		if l.PlanID == planID && l.Date == date {
			logs = append(logs, l)
		}
	}
	return logs
}

// LogSet appends a set log with the next sequential index for the key,
// increments the exercise's set count (clamped to target) and starts a rest
// timer with the preferred duration. Returns the assigned index.
// Storage of the log itself is an upsert by index, so a replayed index can
// never produce a duplicate.
func (s *Store) LogSet(ctx context.Context, planID, exerciseID, date string, weight float64, reps, targetSets int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := s.logsForLocked(planID, exerciseID, date)
	nextIndex := 1
	if n := len(logs); n > 0 {
		nextIndex = logs[n-1].SetIndex + 1
	}

	kept := s.setLogs[:0]
	for _, l := range s.setLogs {
		if !(l.PlanID == planID && l.ExerciseID == exerciseID && l.Date == date && l.SetIndex == nextIndex) {
			kept = append(kept, l)
		}
	}
	s.setLogs = append(kept, models.SetLog{
		PlanID:     planID,
		ExerciseID: exerciseID,
		Date:       date,
		SetIndex:   nextIndex,
		Weight:     weight,
		Reps:       reps,
	})
	s.persistLogged(ctx, keySetLogs, s.setLogs)

	next := s.getCountLocked(planID, exerciseID, date) + 1
	if next > targetSets {
		next = targetSets
	}
	s.setCountLocked(ctx, planID, exerciseID, date, next, targetSets)
	s.startRestTimerLocked(ctx, planID, exerciseID, date, s.restDefaultSec, time.Now())

	return nextIndex
}
