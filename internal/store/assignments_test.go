package store

import (
	"context"
	"errors"
	"testing"
)

// TestAssignUpsert verifies the at-most-one-assignment-per-date rule.
func TestAssignUpsert(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	upper := "upper1"
	lower := "lower"

	if err := s.Assign(ctx, testDate, &upper); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := s.Assign(ctx, testDate, &lower); err != nil {
		t.Fatalf("reassign: %v", err)
	}

	plan, ok := s.AssignmentFor(testDate)
	if !ok {
		t.Fatal("no assignment after reassign")
	}
	if plan.ID != lower {
		t.Errorf("assigned plan = %q, want %q", plan.ID, lower)
	}
	if got := len(s.Assignments()); got != 1 {
		t.Errorf("assignment records = %d, want 1", got)
	}
}

// TestAssignClear verifies that a nil plan clears the day.
func TestAssignClear(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	upper := "upper1"
	if err := s.Assign(ctx, testDate, &upper); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if err := s.Assign(ctx, testDate, nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := s.AssignmentFor(testDate); ok {
		t.Error("assignment survived clear")
	}
}

// TestAssignUnknownPlan verifies that assigning a nonexistent plan is
// rejected.
func TestAssignUnknownPlan(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	bogus := "no-such-plan"
	if err := s.Assign(ctx, testDate, &bogus); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("assign unknown = %v, want ErrPlanNotFound", err)
	}
	if _, ok := s.AssignmentFor(testDate); ok {
		t.Error("rejected assign left a record")
	}
}
