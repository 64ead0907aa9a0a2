package store

import (
	"context"
	"testing"
	"time"
)

// TestRemainingSecondsRoundsUp verifies ceiling rounding and the zero
// floor after expiry.
func TestRemainingSecondsRoundsUp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	start := time.Now()
	s.StartRestTimer(ctx, testPlan, testEx, testDate, 60, start)

	if got := s.RemainingSeconds(testPlan, testEx, testDate, start); got != 60 {
		t.Errorf("remaining at start = %d, want 60", got)
	}
	// 100ms in, a partial second still counts as a full one.
	if got := s.RemainingSeconds(testPlan, testEx, testDate, start.Add(100*time.Millisecond)); got != 60 {
		t.Errorf("remaining after 100ms = %d, want 60", got)
	}
	if got := s.RemainingSeconds(testPlan, testEx, testDate, start.Add(59500*time.Millisecond)); got != 1 {
		t.Errorf("remaining near end = %d, want 1", got)
	}
	if got := s.RemainingSeconds(testPlan, testEx, testDate, start.Add(2*time.Minute)); got != 0 {
		t.Errorf("remaining after expiry = %d, want 0", got)
	}
}

// TestRemainingSecondsNoTimer verifies that a missing timer reads as
// zero rather than an error.
func TestRemainingSecondsNoTimer(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.RemainingSeconds(testPlan, testEx, testDate, time.Now()); got != 0 {
		t.Errorf("remaining without timer = %d, want 0", got)
	}
}

// TestStartRestTimerReplaces verifies that restarting a timer for the
// same key replaces it rather than stacking a second countdown.
func TestStartRestTimerReplaces(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	start := time.Now()
	s.StartRestTimer(ctx, testPlan, testEx, testDate, 60, start)
	s.StartRestTimer(ctx, testPlan, testEx, testDate, 120, start.Add(10*time.Second))

	if got := s.RemainingSeconds(testPlan, testEx, testDate, start.Add(10*time.Second)); got != 120 {
		t.Errorf("remaining after restart = %d, want 120", got)
	}
	// Both starts count as rest events for session stats.
	if got := len(s.RestEventsFor(testPlan, testDate)); got != 2 {
		t.Errorf("rest events = %d, want 2", got)
	}
}

// TestTickFiresExactlyOnce verifies that an expired timer is reported by
// exactly one tick, no matter how many ticks follow.
func TestTickFiresExactlyOnce(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	start := time.Now()
	s.StartRestTimer(ctx, testPlan, testEx, testDate, 30, start)

	if due := s.Tick(ctx, start.Add(29*time.Second)); len(due) != 0 {
		t.Fatalf("timer fired early: %v", due)
	}

	due := s.Tick(ctx, start.Add(31*time.Second))
	if len(due) != 1 {
		t.Fatalf("due timers = %d, want 1", len(due))
	}
	if due[0].ExerciseID != testEx {
		t.Errorf("due timer exercise = %q, want %q", due[0].ExerciseID, testEx)
	}

	if due := s.Tick(ctx, start.Add(time.Hour)); len(due) != 0 {
		t.Errorf("timer fired twice: %v", due)
	}

	// The fired timer stays in place, reading zero, until replaced or
	// canceled.
	if got := s.RemainingSeconds(testPlan, testEx, testDate, start.Add(time.Hour)); got != 0 {
		t.Errorf("remaining after fire = %d, want 0", got)
	}
}

// TestCancelRemovesLatestEventOnly verifies that canceling drops the
// timer and only the most recent matching rest event.
func TestCancelRemovesLatestEventOnly(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	start := time.Now()
	s.StartRestTimer(ctx, testPlan, testEx, testDate, 60, start)
	s.StartRestTimer(ctx, testPlan, testEx, testDate, 90, start.Add(2*time.Minute))

	s.CancelRestTimer(ctx, testPlan, testEx, testDate)

	if got := s.RemainingSeconds(testPlan, testEx, testDate, start.Add(2*time.Minute)); got != 0 {
		t.Errorf("remaining after cancel = %d, want 0", got)
	}
	events := s.RestEventsFor(testPlan, testDate)
	if len(events) != 1 {
		t.Fatalf("rest events after cancel = %d, want 1", len(events))
	}
	if events[0].DurationSec != 60 {
		t.Errorf("surviving event duration = %d, want the earlier 60", events[0].DurationSec)
	}
}

// TestClearRestEvents verifies the session-scoped event reset.
func TestClearRestEvents(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.StartRestTimer(ctx, testPlan, testEx, testDate, 60, time.Now())
	s.ClearRestEvents()
	if got := len(s.RestEventsFor(testPlan, testDate)); got != 0 {
		t.Errorf("rest events after clear = %d, want 0", got)
	}
}

// TestSetRestDefaultSecGuards verifies the non-positive guard on the
// preferred duration.
func TestSetRestDefaultSecGuards(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.SetRestDefaultSec(ctx, 90)
	if got := s.RestDefaultSec(); got != 90 {
		t.Errorf("rest default = %d, want 90", got)
	}

	s.SetRestDefaultSec(ctx, 0)
	if got := s.RestDefaultSec(); got != DefaultRestSec {
		t.Errorf("rest default after zero = %d, want %d", got, DefaultRestSec)
	}
}
