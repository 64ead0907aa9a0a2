// Package store owns all tracker state: plans, day assignments, per-day set
// counts and completions, rest timers, set logs, session history, goals and
// preferences. Every collection is persisted as a JSON document in the
// key-value store on each mutation; the in-memory copy is the source of
// truth between writes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Mriskiali/motion-fits/internal/kvstore"
	"github.com/Mriskiali/motion-fits/internal/models"
)

// Storage keys. These match the original app's records so an existing
// database remains readable.
const (
	keyCompletedExercises = "completedExercises"
	keyAssignments        = "workoutAssignments"
	keyCustomPlans        = "customWorkoutPlans"
	keySetCounts          = "exerciseSetCounts"
	keyRestTimers         = "restTimers"
	keySetLogs            = "setLogs"
	keySessions           = "workoutSessions"
	keyGoals              = "goalsSettings_v1"
	keyRestDefaultSec     = "restDefaultSec"
	keyAutoRest           = "autoRestOnIncrement_v1"
)

// DefaultRestSec is the rest timer duration used until the user picks one.
const DefaultRestSec = 60

var (
	// ErrPlanNotFound is returned when a plan ID resolves to nothing.
	ErrPlanNotFound = errors.New("workout plan not found")
	// ErrBuiltinPlan is returned when a destructive operation targets a
	// built-in plan.
	ErrBuiltinPlan = errors.New("built-in plans cannot be modified")
	// ErrValidation wraps user-input validation failures.
	ErrValidation = errors.New("invalid input")
)

// Store holds the tracker state. All exported methods are safe for
// concurrent use; a single mutex serializes mutation, matching the
// one-logical-actor model of the tracker.
type Store struct {
	mu  sync.Mutex
	kv  kvstore.Store
	log *slog.Logger

	completed   []models.CompletedExercise
	assignments []models.DayWorkoutAssignment
	customPlans []models.WorkoutPlan
	setCounts   []models.ExerciseSetCount
	restTimers  []models.RestTimer
	setLogs     []models.SetLog
	sessions    []models.WorkoutSession
	goals       models.GoalsSettings

	// restEvents is session-scoped and intentionally not persisted.
	restEvents []models.RestEvent

	restDefaultSec int
	autoRest       bool
}

// New loads all collections from the key-value store. Missing or corrupt
// values fall back to empty defaults; a load never fails the caller.
func New(ctx context.Context, kv kvstore.Store, log *slog.Logger) *Store {
	s := &Store{
		kv:             kv,
		log:            log,
		goals:          models.DefaultGoalsSettings(),
		restDefaultSec: DefaultRestSec,
		autoRest:       true,
	}

	loadJSON(ctx, s, keyCompletedExercises, &s.completed)
	loadJSON(ctx, s, keyAssignments, &s.assignments)
	loadJSON(ctx, s, keyCustomPlans, &s.customPlans)
	loadJSON(ctx, s, keySetCounts, &s.setCounts)
	loadJSON(ctx, s, keyRestTimers, &s.restTimers)
	loadJSON(ctx, s, keySetLogs, &s.setLogs)
	loadJSON(ctx, s, keySessions, &s.sessions)
	loadJSON(ctx, s, keyGoals, &s.goals)
	loadJSON(ctx, s, keyRestDefaultSec, &s.restDefaultSec)
	loadJSON(ctx, s, keyAutoRest, &s.autoRest)

	if s.restDefaultSec <= 0 {
		s.restDefaultSec = DefaultRestSec
	}

	return s
}

// loadJSON reads and decodes one key into dst, leaving dst untouched when
// the key is absent or the stored document does not parse.
func loadJSON(ctx context.Context, s *Store, key string, dst any) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("kv read failed, using defaults", "key", key, "error", err)
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.log.Warn("corrupt kv value, using defaults", "key", key, "error", err)
	}
}

// persist serializes v and writes it under key. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

// persistLogged is persist for paths where a write failure must not fail
// the user action; it logs and moves on.
func (s *Store) persistLogged(ctx context.Context, key string, v any) {
	if err := s.persist(ctx, key, v); err != nil {
		s.log.Warn("state write failed", "key", key, "error", err)
	}
}
