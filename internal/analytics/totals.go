package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Mriskiali/motion-fits/internal/dateutil"
	"github.com/Mriskiali/motion-fits/internal/models"
)

// PeriodTotals aggregates the sessions whose date falls inside one period.
type PeriodTotals struct {
	Sessions      int `json:"sessions"`
	Sets          int `json:"sets"`
	DurationSec   int `json:"durationSec"`
	AvgCompletion int `json:"avgCompletion"`
}

func totalsFor(sessions []models.WorkoutSession, from, until time.Time) PeriodTotals {
	var t PeriodTotals
	completionSum := 0
	for _, s := range sessions {
		d, ok := dateutil.ParseKey(s.Date)
		if !ok || d.Before(from) || !d.Before(until) {
			continue
		}
		t.Sessions++
		t.Sets += s.TotalSets
		t.DurationSec += s.DurationSec
		completionSum += s.CompletionPercent
	}
	if t.Sessions > 0 {
		t.AvgCompletion = int(math.Round(float64(completionSum) / float64(t.Sessions)))
	}
	return t
}

// WeekTotals aggregates the sessions of the week (Sunday-start) containing
// now.
func WeekTotals(sessions []models.WorkoutSession, now time.Time) PeriodTotals {
	start := dateutil.WeekStart(now)
	return totalsFor(sessions, start, start.AddDate(0, 0, 7))
}

// MonthTotals aggregates the sessions of the calendar month containing now.
func MonthTotals(sessions []models.WorkoutSession, now time.Time) PeriodTotals {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return totalsFor(sessions, first, first.AddDate(0, 1, 0))
}

// SessionSuperlatives picks the standout sessions of the whole history.
type SessionSuperlatives struct {
	LongestDuration *models.WorkoutSession `json:"longestDuration,omitempty"`
	MostSets        *models.WorkoutSession `json:"mostSets,omitempty"`
	BestCompletion  *models.WorkoutSession `json:"bestCompletion,omitempty"`
}

// Superlatives returns the sessions with the longest duration, most sets
// and best completion percentage. All pointers are nil for empty history.
func Superlatives(sessions []models.WorkoutSession) SessionSuperlatives {
	var out SessionSuperlatives
	for i := range sessions {
		s := &sessions[i]
		if out.LongestDuration == nil || s.DurationSec > out.LongestDuration.DurationSec {
			out.LongestDuration = s
		}
		if out.MostSets == nil || s.TotalSets > out.MostSets.TotalSets {
			out.MostSets = s
		}
		if out.BestCompletion == nil || s.CompletionPercent > out.BestCompletion.CompletionPercent {
			out.BestCompletion = s
		}
	}
	return out
}

// DatedPB is a personal best annotated with the session it came from.
type DatedPB struct {
	models.PersonalBest
	Date     string `json:"date"`
	PlanName string `json:"planName"`
	Color    string `json:"color"`
}

// RecentPBs flattens the PB lists of all sessions, newest session date
// first, and returns at most limit entries.
func RecentPBs(sessions []models.WorkoutSession, limit int) []DatedPB {
	var items []DatedPB
	for _, s := range sessions {
		for _, pb := range s.NewPBs {
			items = append(items, DatedPB{
				PersonalBest: pb,
				Date:         s.Date,
				PlanName:     s.PlanName,
				Color:        s.Color,
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date > items[j].Date })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
