package store

import (
	"context"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// GetCount returns the completed set count for (plan, exercise, date),
// 0 when no record exists.
func (s *Store) GetCount(planID, exerciseID, date string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCountLocked(planID, exerciseID, date)
}

func (s *Store) getCountLocked(planID, exerciseID, date string) int {
	for _, sc := range s.setCounts {
		if sc.PlanID == planID && sc.ExerciseID == exerciseID && sc.Date == date {
			return sc.Count
		}
	}
	return 0
}

// SetCount clamps count to [0, targetSets], upserts the record and
// synchronizes the completion flag: reaching the target marks the exercise
// complete, dropping below it unmarks. This is the only path where a count
// change may alter completion state.
func (s *Store) SetCount(ctx context.Context, planID, exerciseID, date string, count, targetSets int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCountLocked(ctx, planID, exerciseID, date, count, targetSets)
}

func (s *Store) setCountLocked(ctx context.Context, planID, exerciseID, date string, count, targetSets int) {
	if count < 0 {
		count = 0
	}
	if count > targetSets {
		count = targetSets
	}

	found := false
	for i, sc := range s.setCounts {
		if sc.PlanID == planID && sc.ExerciseID == exerciseID && sc.Date == date {
			s.setCounts[i].Count = count
			found = true
			break
		}
	}
	if !found {
		s.setCounts = append(s.setCounts, models.ExerciseSetCount{
			PlanID: planID, ExerciseID: exerciseID, Date: date, Count: count,
		})
	}
	s.persistLogged(ctx, keySetCounts, s.setCounts)

	done := count >= targetSets && targetSets > 0
	completed := s.isCompletedLocked(planID, exerciseID, date)
	if done && !completed {
		s.completed = append(s.completed, models.CompletedExercise{
			PlanID: planID, ExerciseID: exerciseID, Date: date,
		})
		s.persistLogged(ctx, keyCompletedExercises, s.completed)
	} else if !done && completed {
		s.removeCompletedLocked(planID, exerciseID, date)
		s.persistLogged(ctx, keyCompletedExercises, s.completed)
	}
}

// Increment raises the set count by one, clamped to the target, and starts
// a rest timer when the auto-rest preference is on.
func (s *Store) Increment(ctx context.Context, planID, exerciseID, date string, targetSets int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.getCountLocked(planID, exerciseID, date) + 1
	if next > targetSets {
		next = targetSets
	}
	s.setCountLocked(ctx, planID, exerciseID, date, next, targetSets)
	if s.autoRest {
		s.startRestTimerLocked(ctx, planID, exerciseID, date, s.restDefaultSec, time.Now())
	}
	return next
}

// Decrement lowers the set count by one, floored at zero.
func (s *Store) Decrement(ctx context.Context, planID, exerciseID, date string, targetSets int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.getCountLocked(planID, exerciseID, date) - 1
	if next < 0 {
		next = 0
	}
	s.setCountLocked(ctx, planID, exerciseID, date, next, targetSets)
	return next
}

// IsCompleted reports whether a completion record exists for the key.
func (s *Store) IsCompleted(planID, exerciseID, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isCompletedLocked(planID, exerciseID, date)
}

func (s *Store) isCompletedLocked(planID, exerciseID, date string) bool {
	for _, ce := range s.completed {
		if ce.PlanID == planID && ce.ExerciseID == exerciseID && ce.Date == date {
			return true
		}
	}
	return false
}

func (s *Store) removeCompletedLocked(planID, exerciseID, date string) {
	kept := s.completed[:0]
	for _, ce := range s.completed {
		if !(ce.PlanID == planID && ce.ExerciseID == exerciseID && ce.Date == date) {
			kept = append(kept, ce)
		}
	}
	s.completed = kept
}

// ToggleCompletion flips the completion flag directly, for exercises
// without a meaningful set structure (cooldowns, stretches). It never
// touches set counts: un-checking a fully-set exercise leaves its count at
// the target. That asymmetry matches the original behavior and is kept
// deliberately pending product clarification.
func (s *Store) ToggleCompletion(ctx context.Context, planID, exerciseID, date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isCompletedLocked(planID, exerciseID, date) {
		s.removeCompletedLocked(planID, exerciseID, date)
		s.persistLogged(ctx, keyCompletedExercises, s.completed)
		return false
	}
	s.completed = append(s.completed, models.CompletedExercise{
		PlanID: planID, ExerciseID: exerciseID, Date: date,
	})
	s.persistLogged(ctx, keyCompletedExercises, s.completed)
	return true
}

// CompletedExercises returns a copy of all completion records.
func (s *Store) CompletedExercises() []models.CompletedExercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CompletedExercise{}, s.completed...)
}
