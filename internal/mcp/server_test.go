package mcp

import (
	"testing"
	"time"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// TestDefaultDateRange verifies date range defaults (last 30 days) and
// validation of explicit bounds.
func TestDefaultDateRange(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	// Both empty → last 30 days ending today.
	start, end, ok := defaultDateRange("", "", now)
	if !ok {
		t.Fatal("unexpected failure for empty bounds")
	}
	if start != "2025-02-12" {
		t.Errorf("default start = %q, want 2025-02-12", start)
	}
	if end != "2025-03-14" {
		t.Errorf("default end = %q, want 2025-03-14", end)
	}

	// Explicit bounds pass through.
	start, end, ok = defaultDateRange("2025-01-01", "2025-01-31", now)
	if !ok {
		t.Fatal("unexpected failure for explicit bounds")
	}
	if start != "2025-01-01" || end != "2025-01-31" {
		t.Errorf("explicit range = %q..%q, want 2025-01-01..2025-01-31", start, end)
	}

	// Invalid formats are rejected.
	if _, _, ok := defaultDateRange("not-a-date", "", now); ok {
		t.Error("expected failure for invalid start")
	}
	if _, _, ok := defaultDateRange("", "2025-13-40", now); ok {
		t.Error("expected failure for invalid end")
	}
}

// TestFilterSessions verifies inclusive date-key filtering.
func TestFilterSessions(t *testing.T) {
	sessions := []models.WorkoutSession{
		{ID: "a", Date: "2025-03-01"},
		{ID: "b", Date: "2025-03-10"},
		{ID: "c", Date: "2025-03-20"},
	}

	got := filterSessions(sessions, "2025-03-01", "2025-03-10")
	if len(got) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("got IDs %s/%s, want a/b", got[0].ID, got[1].ID)
	}

	if got := filterSessions(sessions, "2025-04-01", "2025-04-30"); len(got) != 0 {
		t.Errorf("got %d sessions outside range, want 0", len(got))
	}
}
