package models

import "testing"

// TestParseTargetSets verifies digit extraction from user-entered sets
// strings.
func TestParseTargetSets(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4", 4},
		{" 3 ", 3},
		{"4 sets", 4},
		{"", 0},
		{"warmup", 0},
		{"10", 10},
	}
	for _, tt := range tests {
		if got := ParseTargetSets(tt.in); got != tt.want {
			t.Errorf("ParseTargetSets(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestParseDefaultReps verifies that rep ranges take the first number.
func TestParseDefaultReps(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{"12–15", 12},
		{"8-10", 8},
		{"to failure", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParseDefaultReps(tt.in); got != tt.want {
			t.Errorf("ParseDefaultReps(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestBuiltinPlansStable verifies the shipped catalog: three plans with
// stable IDs, each exercise carrying a parsable set target.
func TestBuiltinPlansStable(t *testing.T) {
	plans := BuiltinPlans()
	if len(plans) != 3 {
		t.Fatalf("got %d builtin plans, want 3", len(plans))
	}

	wantIDs := []string{"upper1", "lower", "upper2"}
	for i, want := range wantIDs {
		if plans[i].ID != want {
			t.Errorf("plan[%d].ID = %q, want %q", i, plans[i].ID, want)
		}
		if plans[i].IsCustom {
			t.Errorf("builtin plan %q marked custom", plans[i].ID)
		}
		if len(plans[i].Exercises) == 0 {
			t.Errorf("builtin plan %q has no exercises", plans[i].ID)
		}
	}

	for _, p := range plans {
		for _, ex := range p.Exercises {
			if ex.ID == "" || ex.Name == "" {
				t.Errorf("plan %q has an exercise without ID or name", p.ID)
			}
			if ParseTargetSets(ex.Sets) == 0 {
				t.Errorf("plan %q exercise %q: sets %q does not parse", p.ID, ex.ID, ex.Sets)
			}
			if ex.Reps == "" && ex.Duration == "" {
				t.Errorf("plan %q exercise %q has neither reps nor duration", p.ID, ex.ID)
			}
		}
	}
}

// TestBuiltinPlansFreshCopy verifies that mutating a returned plan does
// not leak into subsequent calls.
func TestBuiltinPlansFreshCopy(t *testing.T) {
	a := BuiltinPlans()
	a[0].Exercises[0].Name = "mutated"
	b := BuiltinPlans()
	if b[0].Exercises[0].Name == "mutated" {
		t.Error("builtin plans share exercise state across calls")
	}
}

// TestSessionID verifies the composite history record identifier.
func TestSessionID(t *testing.T) {
	got := SessionID("2025-03-14", "upper1", 1741971600000)
	want := "2025-03-14_upper1_1741971600000"
	if got != want {
		t.Errorf("SessionID = %q, want %q", got, want)
	}
}
