package store

import (
	"context"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// StartRestTimer starts (or restarts) the rest countdown for an exercise.
// Any existing timer for the same key is replaced, and a RestEvent is
// recorded for the session's rest statistics.
func (s *Store) StartRestTimer(ctx context.Context, planID, exerciseID, date string, durationSec int, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startRestTimerLocked(ctx, planID, exerciseID, date, durationSec, now)
}

func (s *Store) startRestTimerLocked(ctx context.Context, planID, exerciseID, date string, durationSec int, now time.Time) {
	kept := s.restTimers[:0]
	for _, t := range s.restTimers {
		if !t.Key(planID, exerciseID, date) {
			kept = append(kept, t)
		}
	}
	s.restTimers = append(kept, models.RestTimer{
		PlanID:      planID,
		ExerciseID:  exerciseID,
		Date:        date,
		EndsAt:      now.UnixMilli() + int64(durationSec)*1000,
		DurationSec: durationSec,
	})
	s.persistLogged(ctx, keyRestTimers, s.restTimers)

	s.restEvents = append(s.restEvents, models.RestEvent{
		PlanID:      planID,
		ExerciseID:  exerciseID,
		Date:        date,
		StartedAt:   now.UnixMilli(),
		DurationSec: durationSec,
	})
}

// CancelRestTimer removes the timer for the key and drops the most recently
// recorded matching RestEvent, so an accidental tap does not inflate the
// session's rest statistics. Only the latest event is removed; earlier
// legitimate rests stay.
func (s *Store) CancelRestTimer(ctx context.Context, planID, exerciseID, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.restTimers[:0]
	for _, t := range s.restTimers {
		if !t.Key(planID, exerciseID, date) {
			kept = append(kept, t)
		}
	}
	s.restTimers = kept
	s.persistLogged(ctx, keyRestTimers, s.restTimers)

	for i := len(s.restEvents) - 1; i >= 0; i-- {
		ev := s.restEvents[i]
		if ev.PlanID == planID && ev.ExerciseID == exerciseID && ev.Date == date {
			s.restEvents = append(s.restEvents[:i], s.restEvents[i+1:]...)
			break
		}
	}
}

// RemainingSeconds returns the whole seconds left on the timer for the key,
// rounded up, floored at zero. An expired timer reads as zero but stays in
// place until replaced or canceled.
func (s *Store) RemainingSeconds(planID, exerciseID, date string, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.restTimers {
		if t.Key(planID, exerciseID, date) {
			remainingMs := t.EndsAt - now.UnixMilli()
			if remainingMs <= 0 {
				return 0
			}
			return int((remainingMs + 999) / 1000)
		}
	}
	return 0
}

// Tick advances the rest-timer clock. Every timer whose end time has passed
// and that has not yet fired is returned and marked notified, so each timer
// produces exactly one completion signal no matter how many ticks follow
// its expiry.
func (s *Store) Tick(ctx context.Context, now time.Time) []models.RestTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMs := now.UnixMilli()
	var due []models.RestTimer
	for i, t := range s.restTimers {
		if !t.Notified && t.EndsAt <= nowMs {
			s.restTimers[i].Notified = true
			due = append(due, s.restTimers[i])
		}
	}
	if len(due) > 0 {
		s.persistLogged(ctx, keyRestTimers, s.restTimers)
	}
	return due
}

// RestEventsFor returns the session-scoped rest events for a plan and date.
func (s *Store) RestEventsFor(planID, date string) []models.RestEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.RestEvent
	for _, ev := range s.restEvents {
		if ev.PlanID == planID && ev.Date == date {
			out = append(out, ev)
		}
	}
	return out
}

// ClearRestEvents discards all session-scoped rest events.
func (s *Store) ClearRestEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restEvents = nil
}

// RestDefaultSec returns the preferred rest duration.
func (s *Store) RestDefaultSec() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restDefaultSec
}

// SetRestDefaultSec stores the preferred rest duration.
func (s *Store) SetRestDefaultSec(ctx context.Context, sec int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sec <= 0 {
		sec = DefaultRestSec
	}
	s.restDefaultSec = sec
	s.persistLogged(ctx, keyRestDefaultSec, s.restDefaultSec)
}

// AutoRestOnIncrement returns whether incrementing a set count starts a
// rest timer automatically.
func (s *Store) AutoRestOnIncrement() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoRest
}

// SetAutoRestOnIncrement stores the auto-rest preference.
func (s *Store) SetAutoRestOnIncrement(ctx context.Context, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoRest = on
	s.persistLogged(ctx, keyAutoRest, s.autoRest)
}
