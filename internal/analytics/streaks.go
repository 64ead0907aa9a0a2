// Package analytics computes derived statistics over the persisted session
// history: streaks, weekly and monthly totals, goal adherence, personal
// best summaries and 1RM trend series. Everything here is a pure function
// of its inputs; "now" is always passed in so results are reproducible in
// tests.
package analytics

import (
	"sort"
	"time"

	"github.com/Mriskiali/motion-fits/internal/dateutil"
	"github.com/Mriskiali/motion-fits/internal/models"
)

// weeklyStreakLookback bounds the backward weekly-goal scan (5 years), so
// a pathological counts map can never loop forever.
const weeklyStreakLookback = 260

// Streaks holds the consecutive-day streaks derived from session dates.
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreaks returns the current streak (consecutive days with at least
// one session, walking back from today) and the longest run of consecutive
// session days in the whole history.
func ComputeStreaks(sessions []models.WorkoutSession, now time.Time) Streaks {
	daySet := make(map[string]bool)
	for _, s := range sessions {
		daySet[s.Date] = true
	}

	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Strings(days)

	longest, run := 0, 0
	var prev time.Time
	for i, ds := range days {
		d, ok := dateutil.ParseKey(ds)
		if !ok {
			continue
		}
		if i == 0 {
			run = 1
		} else {
			if int(d.Sub(prev).Hours()/24+0.5) == 1 {
				run++
			} else {
				run = 1
			}
		}
		if run > longest {
			longest = run
		}
		prev = d
	}

	current := 0
	for cursor := dateutil.Midnight(now); daySet[dateutil.Key(cursor)]; cursor = cursor.AddDate(0, 0, -1) {
		current++
	}

	return Streaks{Current: current, Longest: longest}
}

// WeeklyGoalStreak counts consecutive weeks, ending with the current week,
// in which the session count met the weekly target. A target of zero or
// less yields zero. The scan is capped at five years back.
func WeeklyGoalStreak(sessions []models.WorkoutSession, weeklyTarget int, now time.Time) int {
	if weeklyTarget <= 0 {
		return 0
	}

	counts := make(map[string]int)
	for _, s := range sessions {
		d, ok := dateutil.ParseKey(s.Date)
		if !ok {
			continue
		}
		counts[dateutil.Key(dateutil.WeekStart(d))]++
	}

	streak := 0
	cursor := dateutil.WeekStart(now)
	for i := 0; i < weeklyStreakLookback; i++ {
		if counts[dateutil.Key(cursor)] < weeklyTarget {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -7)
	}
	return streak
}
