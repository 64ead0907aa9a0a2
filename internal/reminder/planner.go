// Package reminder plans and schedules workout reminders from the goals
// settings. Occurrence computation is pure and clock-injected; actual
// delivery goes through the Scheduler capability, which platform
// integrations implement.
package reminder

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/Mriskiali/motion-fits/internal/dateutil"
	"github.com/Mriskiali/motion-fits/internal/models"
)

const (
	// ScheduleWeeks is the lookahead window when scheduling reminders.
	ScheduleWeeks = 8
	// PredictWeeks is the lookahead window for next-occurrence prediction;
	// any non-empty preferred-day set has a match within two weeks.
	PredictWeeks = 2

	defaultHour   = 18
	defaultMinute = 0
)

var timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ParseTime parses a strict 24-hour "HH:mm" string. Invalid input falls
// back to 18:00 rather than failing.
func ParseTime(s string) (hour, minute int) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return defaultHour, defaultMinute
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute
}

// Occurrences builds the candidate reminder times for the preferred
// days/time over the given number of weeks: every matching slot strictly
// after now, sorted ascending.
func Occurrences(gs models.GoalsSettings, now time.Time, weeks int) []time.Time {
	hour, minute := ParseTime(gs.ReminderTime)

	var out []time.Time
	for w := 0; w < weeks; w++ {
		start := dateutil.WeekStart(now.AddDate(0, 0, w*7))
		for _, day := range gs.PreferredDays {
			slot := start.AddDate(0, 0, day)
			slot = time.Date(slot.Year(), slot.Month(), slot.Day(), hour, minute, 0, 0, slot.Location())
			if slot.After(now) {
				out = append(out, slot)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// NextOccurrence predicts the next reminder slot strictly after now,
// without consulting the scheduler. Returns false when reminders are
// disabled or no preferred days are set.
func NextOccurrence(gs models.GoalsSettings, now time.Time) (time.Time, bool) {
	if !gs.RemindersEnabled || len(gs.PreferredDays) == 0 {
		return time.Time{}, false
	}
	dates := Occurrences(gs, now, PredictWeeks)
	if len(dates) == 0 {
		return time.Time{}, false
	}
	return dates[0], true
}
