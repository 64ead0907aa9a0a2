// Package dateutil converts between calendar dates and the YYYY-MM-DD string
// keys that join assignments, completions, set counts, timers and set logs.
// All computations are in local time; weeks start on Sunday.
package dateutil

import "time"

// KeyLayout is the date key format.
const KeyLayout = "2006-01-02"

// Key returns the date key for t in t's location.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a date key back into a midnight local time.
// Invalid keys yield the zero time and false.
func ParseKey(key string) (time.Time, bool) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Midnight truncates t to midnight in its location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	m := Midnight(t)
	return m.AddDate(0, 0, -int(m.Weekday()))
}

// WeekDates returns the seven days of the week containing t, Sunday first.
func WeekDates(t time.Time) []time.Time {
	start := WeekStart(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthDates returns every day of the calendar month containing t.
func MonthDates(t time.Time) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	next := first.AddDate(0, 1, 0)
	var days []time.Time
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Key(a) == Key(b)
}
