package onerm

import (
	"math"
	"testing"

	"github.com/Mriskiali/motion-fits/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestEstimate verifies the Epley formula and its non-physical-input
// guard.
func TestEstimate(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"single rep returns just above weight", 100, 1, 100 * (1 + 1.0/30)},
		{"ten reps", 100, 10, 100 * (1 + 10.0/30)},
		{"bodyweight style high reps", 44, 8, 44 * (1 + 8.0/30)},
		{"zero weight", 0, 10, 0},
		{"negative weight", -5, 10, 0},
		{"zero reps", 100, 0, 0},
		{"negative reps", 100, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.weight, tt.reps); !almostEqual(got, tt.want) {
				t.Errorf("Estimate(%v, %d) = %v, want %v", tt.weight, tt.reps, got, tt.want)
			}
		})
	}
}

// TestBestOfLogs verifies that the best estimate across a set of logs
// wins, and that an empty slice yields zero.
func TestBestOfLogs(t *testing.T) {
	logs := []models.SetLog{
		{Weight: 100, Reps: 5},  // 116.67
		{Weight: 90, Reps: 12},  // 126
		{Weight: 110, Reps: 1},  // 113.67
		{Weight: 0, Reps: 20},   // 0, ignored
	}
	want := 90 * (1 + 12.0/30)
	if got := BestOfLogs(logs); !almostEqual(got, want) {
		t.Errorf("BestOfLogs = %v, want %v", got, want)
	}

	if got := BestOfLogs(nil); got != 0 {
		t.Errorf("BestOfLogs(nil) = %v, want 0", got)
	}
}

// TestBestByExercise verifies that the per-exercise fold takes the best
// value across all sessions and keys by exercise ID.
func TestBestByExercise(t *testing.T) {
	sessions := []models.WorkoutSession{
		{SetLogs: []models.SetLog{
			{ExerciseID: "u1-1", Weight: 80, Reps: 10},
			{ExerciseID: "u1-2", Weight: 40, Reps: 10},
		}},
		{SetLogs: []models.SetLog{
			{ExerciseID: "u1-1", Weight: 100, Reps: 5},
		}},
	}

	best := BestByExercise(sessions)
	if want := 100 * (1 + 5.0/30); !almostEqual(best["u1-1"], want) {
		t.Errorf("best[u1-1] = %v, want %v", best["u1-1"], want)
	}
	if want := 40 * (1 + 10.0/30); !almostEqual(best["u1-2"], want) {
		t.Errorf("best[u1-2] = %v, want %v", best["u1-2"], want)
	}
	if _, ok := best["u1-3"]; ok {
		t.Error("unlogged exercise present in best map")
	}
}

// TestNewPB verifies the strictly-greater rule: ties and zero bests are
// never personal bests, and accepted values round to one decimal.
func TestNewPB(t *testing.T) {
	tests := []struct {
		name        string
		sessionBest float64
		priorBest   float64
		wantValue   float64
		wantOK      bool
	}{
		{"beats prior", 133.333333, 120, 133.3, true},
		{"first ever", 55.7333333, 0, 55.7, true},
		{"tie is not a PB", 120, 120, 0, false},
		{"below prior", 110, 120, 0, false},
		{"zero best never a PB", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewPB(tt.sessionBest, tt.priorBest)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !almostEqual(got, tt.wantValue) {
				t.Errorf("value = %v, want %v", got, tt.wantValue)
			}
		})
	}
}
