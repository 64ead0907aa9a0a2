// Package session drives the workout session lifecycle: Idle until a plan
// is opened, Active while sets are logged, and back to Idle once an
// explicit finish produces an immutable history record. Closing without
// finishing loses nothing — counts and logs persist incrementally — but
// writes no record.
package session

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
	"github.com/Mriskiali/motion-fits/internal/onerm"
	"github.com/Mriskiali/motion-fits/internal/store"
)

// ErrNoActiveSession is returned by Finish when no session is open.
var ErrNoActiveSession = errors.New("no active workout session")

// ErrSessionActive is returned by Open when a session is already running.
var ErrSessionActive = errors.New("a workout session is already active")

// Manager tracks the one active session. All state mutation during the
// session goes through the store; the manager only holds the session frame
// (plan, date, start time).
type Manager struct {
	mu    sync.Mutex
	store *store.Store
	log   *slog.Logger

	active    bool
	planID    string
	date      string
	startedAt time.Time
}

// NewManager returns an idle session manager.
func NewManager(st *store.Store, log *slog.Logger) *Manager {
	return &Manager{store: st, log: log}
}

// Open transitions Idle → Active for a plan on a date, recording the start
// time.
func (m *Manager) Open(planID, date string, now time.Time) error {
	if _, err := m.store.PlanByID(planID); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active {
		return ErrSessionActive
	}
	m.active = true
	m.planID = planID
	m.date = date
	m.startedAt = now
	m.log.Info("session opened", "plan", planID, "date", date)
	return nil
}

// Active reports whether a session is open, and for which plan and date.
func (m *Manager) Active() (planID, date string, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.planID, m.date, m.active
}

// Finish transitions Active → Finished: it snapshots progress, computes
// aggregates and personal bests, appends the immutable record to history,
// clears session-scoped rest events and returns to Idle. Even when the
// history write fails the manager returns to Idle; the error reaches the
// caller exactly once and is not retried.
func (m *Manager) Finish(ctx context.Context, now time.Time) (models.WorkoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.active {
		return models.WorkoutSession{}, ErrNoActiveSession
	}

	plan, err := m.store.PlanByID(m.planID)
	if err != nil {
		// Plan deleted mid-session; drop the session frame.
		m.reset()
		return models.WorkoutSession{}, err
	}

	startedAt := m.startedAt.UnixMilli()
	endedAt := now.UnixMilli()
	durationSec := int(math.Round(float64(endedAt-startedAt) / 1000))
	if durationSec < 1 {
		durationSec = 1
	}

	snapshot := m.snapshot(plan)
	completionPercent := completionPercent(snapshot)
	totalSets := 0
	for _, e := range snapshot {
		totalSets += e.CompletedSets
	}

	logs := m.store.SessionLogs(plan.ID, m.date)
	priorBest := onerm.BestByExercise(m.store.Sessions())

	var newPBs []models.PersonalBest
	for _, ex := range plan.Exercises {
		var exLogs []models.SetLog
		for _, l := range logs {
			if l.ExerciseID == ex.ID {
				exLogs = append(exLogs, l)
			}
		}
		if value, ok := onerm.NewPB(onerm.BestOfLogs(exLogs), priorBest[ex.ID]); ok {
			newPBs = append(newPBs, models.PersonalBest{
				ExerciseID: ex.ID,
				Name:       ex.Name,
				Metric:     "1RM",
				Value:      value,
			})
		}
	}

	restEvents := m.store.RestEventsFor(plan.ID, m.date)
	restCount := len(restEvents)
	restAvgSec := 0
	if restCount > 0 {
		total := 0
		for _, ev := range restEvents {
			total += ev.DurationSec
		}
		restAvgSec = int(math.Round(float64(total) / float64(restCount)))
	}

	sess := models.WorkoutSession{
		ID:                models.SessionID(m.date, plan.ID, endedAt),
		Date:              m.date,
		PlanID:            plan.ID,
		PlanName:          plan.Name,
		Color:             plan.Color,
		StartedAt:         startedAt,
		EndedAt:           endedAt,
		DurationSec:       durationSec,
		Exercises:         snapshot,
		CompletionPercent: completionPercent,
		TotalSets:         totalSets,
		RestCount:         restCount,
		RestAvgSec:        restAvgSec,
		SetLogs:           logs,
		NewPBs:            newPBs,
	}

	err = m.store.AppendSession(ctx, sess)
	m.store.ClearRestEvents()
	m.reset()
	if err != nil {
		return models.WorkoutSession{}, err
	}
	return sess, nil
}

// reset returns the manager to Idle. Callers must hold m.mu.
func (m *Manager) reset() {
	m.active = false
	m.planID = ""
	m.date = ""
	m.startedAt = time.Time{}
}

// snapshot captures each exercise's progress as of now.
func (m *Manager) snapshot(plan models.WorkoutPlan) []models.SessionExercise {
	out := make([]models.SessionExercise, 0, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		out = append(out, models.SessionExercise{
			ExerciseID:    ex.ID,
			Name:          ex.Name,
			TargetSets:    models.ParseTargetSets(ex.Sets),
			CompletedSets: m.store.GetCount(plan.ID, ex.ID, m.date),
			Completed:     m.store.IsCompleted(plan.ID, ex.ID, m.date),
		})
	}
	return out
}

func completionPercent(items []models.SessionExercise) int {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, it := range items {
		if it.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(items)) * 100))
}
