package reminder

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Mriskiali/motion-fits/internal/kvstore"
	"github.com/Mriskiali/motion-fits/internal/models"
	"github.com/Mriskiali/motion-fits/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*Service, *store.Store, *InProcess) {
	t.Helper()
	st := store.New(context.Background(), kvstore.NewMemory(), testLogger())
	sched := NewInProcess()
	return NewService(st, sched, testLogger()), st, sched
}

// TestApplySchedulesReminders verifies the enable path: occurrences are
// booked over the eight-week window and the handles are persisted.
func TestApplySchedulesReminders(t *testing.T) {
	ctx := context.Background()
	svc, st, sched := newTestService(t)

	now := time.Date(2025, 3, 15, 23, 0, 0, 0, time.Local)
	gs := models.GoalsSettings{
		WeeklyTarget:     3,
		PreferredDays:    []int{1, 3, 5},
		RemindersEnabled: true,
		ReminderTime:     "18:00",
	}

	saved, err := svc.Apply(ctx, gs, now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if len(saved.ScheduledIDs) != 21 {
		t.Errorf("scheduled handles = %d, want 21", len(saved.ScheduledIDs))
	}
	if sched.Pending() != 21 {
		t.Errorf("pending occurrences = %d, want 21", sched.Pending())
	}
	if got := st.Goals(); len(got.ScheduledIDs) != 21 {
		t.Errorf("persisted handles = %d, want 21", len(got.ScheduledIDs))
	}
	if saved.UpdatedAt != now.UnixMilli() {
		t.Errorf("updatedAt = %d, want %d", saved.UpdatedAt, now.UnixMilli())
	}
}

// TestApplyReplacesSchedule verifies that re-applying cancels the old
// handles before booking new ones, so occurrences never accumulate.
func TestApplyReplacesSchedule(t *testing.T) {
	ctx := context.Background()
	svc, _, sched := newTestService(t)

	now := time.Date(2025, 3, 15, 23, 0, 0, 0, time.Local)
	gs := models.GoalsSettings{
		WeeklyTarget:     3,
		PreferredDays:    []int{1, 3, 5},
		RemindersEnabled: true,
		ReminderTime:     "18:00",
	}

	if _, err := svc.Apply(ctx, gs, now); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	gs.PreferredDays = []int{2}
	saved, err := svc.Apply(ctx, gs, now)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}

	// 7 remaining future Tuesdays, and nothing left over from the first
	// schedule.
	if len(saved.ScheduledIDs) != 7 {
		t.Errorf("scheduled handles = %d, want 7", len(saved.ScheduledIDs))
	}
	if sched.Pending() != 7 {
		t.Errorf("pending occurrences = %d, want 7", sched.Pending())
	}
}

// TestApplyDisableCancelsAll verifies the disable path: everything is
// canceled and no handles remain.
func TestApplyDisableCancelsAll(t *testing.T) {
	ctx := context.Background()
	svc, st, sched := newTestService(t)

	now := time.Date(2025, 3, 15, 23, 0, 0, 0, time.Local)
	gs := models.GoalsSettings{
		PreferredDays:    []int{1, 3, 5},
		RemindersEnabled: true,
		ReminderTime:     "18:00",
	}
	if _, err := svc.Apply(ctx, gs, now); err != nil {
		t.Fatalf("enable: %v", err)
	}

	gs.RemindersEnabled = false
	saved, err := svc.Apply(ctx, gs, now)
	if err != nil {
		t.Fatalf("disable: %v", err)
	}

	if len(saved.ScheduledIDs) != 0 {
		t.Errorf("handles after disable = %d, want 0", len(saved.ScheduledIDs))
	}
	if sched.Pending() != 0 {
		t.Errorf("pending after disable = %d, want 0", sched.Pending())
	}
	if st.Goals().RemindersEnabled {
		t.Error("disable preference not persisted")
	}
}

// TestApplyPermissionDenied verifies that denial keeps the enabled
// preference but books nothing, so the settings round-trip cleanly once
// permission appears.
func TestApplyPermissionDenied(t *testing.T) {
	ctx := context.Background()
	svc, st, sched := newTestService(t)
	sched.Deny(true)

	now := time.Date(2025, 3, 15, 23, 0, 0, 0, time.Local)
	gs := models.GoalsSettings{
		PreferredDays:    []int{1, 3, 5},
		RemindersEnabled: true,
		ReminderTime:     "18:00",
	}

	saved, err := svc.Apply(ctx, gs, now)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if !saved.RemindersEnabled {
		t.Error("denial dropped the enabled preference")
	}
	if len(saved.ScheduledIDs) != 0 || sched.Pending() != 0 {
		t.Error("denial still booked occurrences")
	}

	// Permission granted later: the same settings now schedule.
	sched.Deny(false)
	saved, err = svc.Apply(ctx, st.Goals(), now)
	if err != nil {
		t.Fatalf("re-apply: %v", err)
	}
	if len(saved.ScheduledIDs) != 21 {
		t.Errorf("handles after grant = %d, want 21", len(saved.ScheduledIDs))
	}
}
