// Package onerm estimates one-rep-max values from submaximal sets and
// detects personal bests. The estimation uses the Epley formula
// weight * (1 + reps/30); it is a pacing heuristic, not sports science.
package onerm

import (
	"math"

	"github.com/Mriskiali/motion-fits/internal/models"
)

// Estimate returns the estimated 1RM for one set. Non-physical input
// (weight or reps ≤ 0) contributes nothing and yields 0.
func Estimate(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	return weight * (1 + float64(reps)/30)
}

// BestOfLogs returns the highest estimated 1RM across a set of logs,
// 0 for an empty slice.
func BestOfLogs(logs []models.SetLog) float64 {
	best := 0.0
	for _, l := range logs {
		if e := Estimate(l.Weight, l.Reps); e > best {
			best = e
		}
	}
	return best
}

// BestByExercise folds every set log of every session into a map of
// exercise ID to the best 1RM ever achieved for it.
func BestByExercise(sessions []models.WorkoutSession) map[string]float64 {
	best := make(map[string]float64)
	for _, s := range sessions {
		for _, l := range s.SetLogs {
			if e := Estimate(l.Weight, l.Reps); e > best[l.ExerciseID] {
				best[l.ExerciseID] = e
			}
		}
	}
	return best
}

// NewPB reports whether sessionBest beats priorBest. Ties are not personal
// bests, and a zero session best never is. The returned value is rounded to
// one decimal place for display and storage.
func NewPB(sessionBest, priorBest float64) (float64, bool) {
	if sessionBest <= 0 || sessionBest <= priorBest {
		return 0, false
	}
	return math.Round(sessionBest*10) / 10, true
}
