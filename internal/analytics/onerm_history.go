package analytics

import (
	"sort"

	"github.com/Mriskiali/motion-fits/internal/models"
	"github.com/Mriskiali/motion-fits/internal/onerm"
)

// OneRMPoint is one computed 1RM value on a date.
type OneRMPoint struct {
	Date  string  `json:"date"`
	OneRM float64 `json:"oneRM"`
}

// OneRMSeries is the chronological 1RM trend for one exercise.
type OneRMSeries struct {
	Name   string       `json:"name"`
	Values []OneRMPoint `json:"values"`
}

// OneRMHistory builds, for every exercise seen in any session's set logs, a
// chronological series of estimated 1RM values. Sets without positive
// weight and reps are skipped.
func OneRMHistory(sessions []models.WorkoutSession) map[string]OneRMSeries {
	out := make(map[string]OneRMSeries)
	for _, s := range sessions {
		nameByID := make(map[string]string, len(s.Exercises))
		for _, ex := range s.Exercises {
			nameByID[ex.ExerciseID] = ex.Name
		}
		for _, l := range s.SetLogs {
			e := onerm.Estimate(l.Weight, l.Reps)
			if e <= 0 {
				continue
			}
			series, ok := out[l.ExerciseID]
			if !ok {
				name := nameByID[l.ExerciseID]
				if name == "" {
					name = l.ExerciseID
				}
				series = OneRMSeries{Name: name}
			}
			series.Values = append(series.Values, OneRMPoint{Date: s.Date, OneRM: e})
			out[l.ExerciseID] = series
		}
	}
	for id, series := range out {
		sort.SliceStable(series.Values, func(i, j int) bool {
			return series.Values[i].Date < series.Values[j].Date
		})
		out[id] = series
	}
	return out
}
